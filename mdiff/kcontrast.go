// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdiff

import (
	"math"

	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
)

// KContrast estimates the contrast parameter k from the gradient
// statistics of src. The image is smoothed with a Gaussian of the given
// σ, gradients are taken with the 3x3 Scharr-family kernels, and k is
// the magnitude at the configured percentile of the histogram of
// nonzero magnitudes (1-pixel border excluded). Images without
// gradients fall back to the default contrast.
func KContrast(src *img.Flt, sigma float64) float64 {
	w, h := src.Width, src.Height
	if w < 3 || h < 3 {
		return inp.KcontrastDefault
	}

	smooth := img.NewFlt(w, h)
	img.GaussBlur(smooth, src, sigma)
	gx := img.NewFlt(w, h)
	gy := img.NewFlt(w, h)
	img.Scharr(gx, smooth, 1, 0, 1)
	img.Scharr(gy, smooth, 0, 1, 1)

	// maximum gradient magnitude over the interior
	hmax := 0.0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := math.Sqrt(float64(gx.Pix[i])*float64(gx.Pix[i]) + float64(gy.Pix[i])*float64(gy.Pix[i]))
			if m > hmax {
				hmax = m
			}
		}
	}
	if hmax == 0 {
		return inp.KcontrastDefault
	}

	// histogram of nonzero magnitudes
	hist := make([]int, inp.KcontrastNbins)
	npoints := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := math.Sqrt(float64(gx.Pix[i])*float64(gx.Pix[i]) + float64(gy.Pix[i])*float64(gy.Pix[i]))
			if m > 0 {
				nbin := int(math.Floor(m / hmax * float64(inp.KcontrastNbins)))
				if nbin == inp.KcontrastNbins {
					nbin--
				}
				hist[nbin]++
				npoints++
			}
		}
	}
	if npoints == 0 {
		return inp.KcontrastDefault
	}

	// percentile
	nthreshold := int(float64(npoints) * inp.KcontrastPercentile)
	nelements, nbin := 0, 0
	for ; nbin < inp.KcontrastNbins && nelements < nthreshold; nbin++ {
		nelements += hist[nbin]
	}
	if nelements < nthreshold {
		return inp.KcontrastDefault
	}
	return hmax * float64(nbin) / float64(inp.KcontrastNbins)
}

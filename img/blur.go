// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import "math"

// GaussKernel returns a normalized 1-D Gaussian kernel for the given σ.
// The kernel size follows the published KAZE sizing
//
//   ksize = ceil(2 * (1 + (σ - 0.8) / 0.3))
//
// rounded up to the next odd number, with a minimum of 3 taps.
func GaussKernel(sigma float64) []float32 {
	ksize := int(math.Ceil(2.0 * (1.0 + (sigma-0.8)/0.3)))
	if ksize%2 == 0 {
		ksize++
	}
	if ksize < 3 {
		ksize = 3
	}
	half := ksize / 2
	kernel := make([]float32, ksize)
	sum := 0.0
	for i := 0; i < ksize; i++ {
		d := float64(i - half)
		v := math.Exp(-d * d / (2.0 * sigma * sigma))
		kernel[i] = float32(v)
		sum += v
	}
	for i := range kernel {
		kernel[i] /= float32(sum)
	}
	return kernel
}

// GaussBlur convolves src with a separable Gaussian of the given σ and
// writes the result to dst. The border is replicated. dst and src may be
// the same image.
func GaussBlur(dst, src *Flt, sigma float64) {
	kernel := GaussKernel(sigma)
	tmp := NewFlt(src.Width, src.Height)
	convRows(tmp, src, kernel)
	convCols(dst, tmp, kernel)
}

// convRows convolves each row with kernel (replicate border)
func convRows(dst, src *Flt, kernel []float32) {
	w, h := src.Width, src.Height
	half := len(kernel) / 2
	Parallel(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := src.Pix[y*w : (y+1)*w]
			out := dst.Pix[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				var acc float32
				for k, kv := range kernel {
					j := x + k - half
					if j < 0 {
						j = 0
					} else if j > w-1 {
						j = w - 1
					}
					acc += kv * row[j]
				}
				out[x] = acc
			}
		}
	})
}

// convCols convolves each column with kernel (replicate border).
// The loop is partitioned by output row so that writes stay sequential.
func convCols(dst, src *Flt, kernel []float32) {
	w, h := src.Width, src.Height
	half := len(kernel) / 2
	Parallel(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			out := dst.Pix[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				var acc float32
				for k, kv := range kernel {
					i := y + k - half
					if i < 0 {
						i = 0
					} else if i > h-1 {
						i = h - 1
					}
					acc += kv * src.Pix[i*w+x]
				}
				out[x] = acc
			}
		}
	})
}

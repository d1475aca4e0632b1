// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import "github.com/cpmech/gosl/chk"

// scharrW is the Scharr smoothing weight: the central tap of the
// smoothing kernel relative to its endpoints
const scharrW = 10.0 / 3.0

// DerivTaps returns the endpoint/center values (a,b,c) of the 3-tap
// smoothing and derivative kernels of the Scharr family at the given
// integer scale. The taps sit at offsets {-scale, 0, +scale} so the
// kernel footprint is 3 + 2*(scale-1). The smoothing kernel carries the
// normalization 1/(2*scale*(w+2)) with w = 10/3; the derivative kernel
// is the plain central difference [-1, 0, 1].
func DerivTaps(scale int) (smooth, deriv [3]float32) {
	norm := 1.0 / (2.0 * float64(scale) * (scharrW + 2.0))
	smooth = [3]float32{float32(norm), float32(scharrW * norm), float32(norm)}
	deriv = [3]float32{-1, 0, 1}
	return
}

// Scharr computes the first spatial derivative of src at the given
// integer scale using the separable Scharr-family kernels and writes it
// to dst. Exactly one of (dx,dy) must be 1: dx=1 differentiates along
// rows, dy=1 along columns. The border is replicated. dst must be a
// distinct image from src.
func Scharr(dst, src *Flt, dx, dy, scale int) {
	if scale < 1 || dx+dy != 1 || dx*dy != 0 {
		chk.Panic("Scharr: invalid derivative order (dx=%d, dy=%d) or scale=%d", dx, dy, scale)
	}
	smooth, deriv := DerivTaps(scale)
	tmp := NewFlt(src.Width, src.Height)
	if dx == 1 {
		conv3Rows(tmp, src, deriv, scale)
		conv3Cols(dst, tmp, smooth, scale)
		return
	}
	conv3Rows(tmp, src, smooth, scale)
	conv3Cols(dst, tmp, deriv, scale)
}

// conv3Rows convolves each row with a sparse 3-tap kernel whose taps sit
// at offsets {-r, 0, +r} (replicate border)
func conv3Rows(dst, src *Flt, taps [3]float32, r int) {
	w, h := src.Width, src.Height
	a, b, c := taps[0], taps[1], taps[2]
	Parallel(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := src.Pix[y*w : (y+1)*w]
			out := dst.Pix[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				xl := x - r
				if xl < 0 {
					xl = 0
				}
				xr := x + r
				if xr > w-1 {
					xr = w - 1
				}
				out[x] = a*row[xl] + b*row[x] + c*row[xr]
			}
		}
	})
}

// conv3Cols convolves each column with a sparse 3-tap kernel whose taps
// sit at offsets {-r, 0, +r} (replicate border)
func conv3Cols(dst, src *Flt, taps [3]float32, r int) {
	w, h := src.Width, src.Height
	a, b, c := taps[0], taps[1], taps[2]
	Parallel(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			yu := y - r
			if yu < 0 {
				yu = 0
			}
			yd := y + r
			if yd > h-1 {
				yd = h - 1
			}
			up := src.Pix[yu*w : yu*w+w]
			mid := src.Pix[y*w : y*w+w]
			dn := src.Pix[yd*w : yd*w+w]
			out := dst.Pix[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				out[x] = a*up[x] + b*mid[x] + c*dn[x]
			}
		}
	})
}

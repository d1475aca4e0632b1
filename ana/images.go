// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytic test images shared by package tests
package ana

import (
	"math"

	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gosl/rnd"
)

// Flat returns a w x h image with every pixel set to value
func Flat(w, h int, value float32) *img.Flt {
	o := img.NewFlt(w, h)
	o.Fill(value)
	return o
}

// Pulse returns a w x h zero image with a single pixel of the given
// amplitude at (x,y)
func Pulse(w, h, x, y int, amplitude float32) *img.Flt {
	o := img.NewFlt(w, h)
	o.Set(x, y, amplitude)
	return o
}

// Blob adds a 2-D Gaussian blob centered at (cx,cy) with standard
// deviation σ and the given peak amplitude to dst
func Blob(dst *img.Flt, cx, cy, sigma, amplitude float64) {
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			v := amplitude * math.Exp(-(dx*dx+dy*dy)/(2.0*sigma*sigma))
			dst.Set(x, y, dst.At(x, y)+float32(v))
		}
	}
}

// BlobImage returns a w x h image holding a single Gaussian blob
func BlobImage(w, h int, cx, cy, sigma, amplitude float64) *img.Flt {
	o := img.NewFlt(w, h)
	Blob(o, cx, cy, sigma, amplitude)
	return o
}

// Noise returns a w x h image of uniform random values in [0,1) drawn
// from gosl's generator after seeding it with the given seed
func Noise(w, h int, seed int) *img.Flt {
	rnd.Init(seed)
	o := img.NewFlt(w, h)
	for i := range o.Pix {
		o.Pix[i] = float32(rnd.Float64(0, 1))
	}
	return o
}

// Rot90 returns src rotated by 90 degrees counter-clockwise in pixel
// space: pixel (x,y) maps to (y, w-1-x)
func Rot90(src *img.Flt) *img.Flt {
	o := img.NewFlt(src.Height, src.Width)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			o.Set(y, src.Width-1-x, src.At(x, y))
		}
	}
	return o
}

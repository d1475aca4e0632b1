// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package img implements float32 image planes and the separable
// convolution kernels used by the nonlinear scale space
package img

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Flt is a dense single-channel float32 image of size Width x Height.
// Pixel (x,y) lives at Pix[y*Width+x].
type Flt struct {
	Width  int       // number of columns
	Height int       // number of rows
	Pix    []float32 // [Height*Width] row-major pixel values
}

// NewFlt allocates a zeroed image with the given dimensions
func NewFlt(width, height int) *Flt {
	return &Flt{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height),
	}
}

// NewFltStrided copies a strided caller buffer into a dense image.
// stride is the number of float32 values between the starts of
// consecutive rows and must be at least width.
func NewFltStrided(data []float32, width, height, stride int) (o *Flt, err error) {
	if stride < width {
		return nil, chk.Err("stride must be at least the image width. stride=%d width=%d is invalid", stride, width)
	}
	if len(data) < (height-1)*stride+width {
		return nil, chk.Err("input buffer is too short: len=%d for %dx%d with stride=%d", len(data), width, height, stride)
	}
	o = NewFlt(width, height)
	for y := 0; y < height; y++ {
		copy(o.Pix[y*width:(y+1)*width], data[y*stride:y*stride+width])
	}
	return
}

// At returns the pixel value at (x,y)
func (o *Flt) At(x, y int) float32 {
	return o.Pix[y*o.Width+x]
}

// Set sets the pixel value at (x,y)
func (o *Flt) Set(x, y int, v float32) {
	o.Pix[y*o.Width+x] = v
}

// Clone returns a deep copy
func (o *Flt) Clone() *Flt {
	c := NewFlt(o.Width, o.Height)
	copy(c.Pix, o.Pix)
	return c
}

// CopyFrom copies the pixels of b. Dimensions must match.
func (o *Flt) CopyFrom(b *Flt) {
	copy(o.Pix, b.Pix)
}

// Fill sets every pixel to v
func (o *Flt) Fill(v float32) {
	for i := range o.Pix {
		o.Pix[i] = v
	}
}

// Sum returns the sum of all pixels, accumulated in float64
func (o *Flt) Sum() (sum float64) {
	for _, v := range o.Pix {
		sum += float64(v)
	}
	return
}

// AtClamped returns the pixel at (x,y) with coordinates clamped to the
// image rectangle (replicate border)
func (o *Flt) AtClamped(x, y int) float32 {
	if x < 0 {
		x = 0
	}
	if x > o.Width-1 {
		x = o.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y > o.Height-1 {
		y = o.Height - 1
	}
	return o.Pix[y*o.Width+x]
}

// Bilinear returns the bilinearly interpolated value at the subpixel
// position (x,y); sample corners are clamped to the image rectangle
func (o *Flt) Bilinear(x, y float64) float32 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := float32(x - float64(x0))
	fy := float32(y - float64(y0))
	v00 := o.AtClamped(x0, y0)
	v10 := o.AtClamped(x0+1, y0)
	v01 := o.AtClamped(x0, y0+1)
	v11 := o.AtClamped(x0+1, y0+1)
	return (1-fx)*(1-fy)*v00 + fx*(1-fy)*v10 + (1-fx)*fy*v01 + fx*fy*v11
}

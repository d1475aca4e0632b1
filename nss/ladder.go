// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nss implements the nonlinear scale space: the evolution
// ladder, the AOS diffusion solver and the multiscale derivative bank
package nss

import (
	"math"

	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
)

// Level holds one evolution record. All images share the input
// resolution; the scale space is never downsampled.
type Level struct {

	// schedule
	T        float64 // evolution time:  t = σ²/2
	Sigma    float64 // scale σ of this level
	Octave   int     // octave index
	Sublevel int     // sublevel index within the octave
	SigmaPx  int     // round(σ), the integer scale used by the derivative kernels

	// diffusion images
	Lsmooth *img.Flt // previous level smoothed for the conductance derivatives
	Lflow   *img.Flt // conductance image g(|∇Lsmooth|²)
	Lt      *img.Flt // diffused image at time T

	// scale-normalized derivatives (levels i ≥ 1)
	Lx, Ly        *img.Flt // first derivatives, × σ
	Lxx, Lxy, Lyy *img.Flt // second derivatives, × σ²

	// detector response (levels i ≥ 1)
	Ldet *img.Flt // σ⁴-normalized Hessian determinant
}

// NewLadder computes the σ/t schedule and allocates the evolution
// records for the configured image dimensions
func NewLadder(opts *inp.Options) (levels []*Level) {
	n := opts.Nlevels()
	levels = make([]*Level, n)
	for i := 0; i < n; i++ {
		octave := i / opts.Sublevels
		sublevel := i % opts.Sublevels
		sigma := opts.BaseSigma * math.Pow(2.0, float64(octave)+float64(sublevel)/float64(opts.Sublevels))
		levels[i] = &Level{
			T:        0.5 * sigma * sigma,
			Sigma:    sigma,
			Octave:   octave,
			Sublevel: sublevel,
			SigmaPx:  int(sigma + 0.5),
			Lsmooth:  img.NewFlt(opts.Width, opts.Height),
			Lflow:    img.NewFlt(opts.Width, opts.Height),
			Lt:       img.NewFlt(opts.Width, opts.Height),
			Lx:       img.NewFlt(opts.Width, opts.Height),
			Ly:       img.NewFlt(opts.Width, opts.Height),
			Lxx:      img.NewFlt(opts.Width, opts.Height),
			Lxy:      img.NewFlt(opts.Width, opts.Height),
			Lyy:      img.NewFlt(opts.Width, opts.Height),
			Ldet:     img.NewFlt(opts.Width, opts.Height),
		}
	}
	return
}

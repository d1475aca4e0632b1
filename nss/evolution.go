// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nss

import (
	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gokaze/mdiff"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Evolution drives the construction of the nonlinear scale space. All
// level buffers are allocated at construction; Run mutates the levels
// in order and afterwards the array is read-only.
type Evolution struct {

	// configuration
	Opts   *inp.Options // the configuration (read-only)
	Levels []*Level     // [nlevels] evolution records

	// derived
	Kcontrast float64 // contrast parameter estimated by the last Run

	// scratchpad
	aos *Aos     // implicit diffusion workspace
	gx  *img.Flt // conductance gradient
	gy  *img.Flt // conductance gradient
}

// NewEvolution validates the options and allocates the evolution records
func NewEvolution(opts *inp.Options) (o *Evolution, err error) {
	err = opts.Validate()
	if err != nil {
		return nil, err
	}
	o = &Evolution{
		Opts:   opts,
		Levels: NewLadder(opts),
		aos:    NewAos(opts.Width, opts.Height),
		gx:     img.NewFlt(opts.Width, opts.Height),
		gy:     img.NewFlt(opts.Width, opts.Height),
	}
	return
}

// Run builds the scale space for the given image. The image dimensions
// must match the configured ones. On return every level holds its
// diffused image and scale-normalized derivatives.
func (o *Evolution) Run(src *img.Flt) (err error) {
	if src.Width != o.Opts.Width || src.Height != o.Opts.Height {
		return chk.Err("image dimensions %dx%d do not match the configured %dx%d", src.Width, src.Height, o.Opts.Width, o.Opts.Height)
	}
	if o.Opts.Width == 0 || o.Opts.Height == 0 {
		return
	}

	// contrast parameter from the input gradients
	o.Kcontrast = mdiff.KContrast(src, 1.0)
	mdl, err := mdiff.New(o.Opts.Diffusiv)
	if err != nil {
		return
	}
	err = mdl.Init(fun.Prms{&fun.Prm{N: "k", V: o.Kcontrast}})
	if err != nil {
		return
	}

	// level 0: base smoothing only
	img.GaussBlur(o.Levels[0].Lt, src, o.Opts.BaseSigma)

	// remaining levels: conductance + one AOS step each
	for i := 1; i < len(o.Levels); i++ {
		prev, cur := o.Levels[i-1], o.Levels[i]
		img.GaussBlur(cur.Lsmooth, prev.Lt, o.Opts.SigmaDerv)
		img.Scharr(o.gx, cur.Lsmooth, 1, 0, 1)
		img.Scharr(o.gy, cur.Lsmooth, 0, 1, 1)
		o.conductance(cur.Lflow, mdl)
		o.aos.Step(cur.Lt, prev.Lt, cur.Lflow, cur.T-prev.T)
	}

	// scale-normalized derivatives for the detector and descriptors
	o.derivatives()
	return
}

// conductance fills flow = g(|∇Lsmooth|²) from the gradient scratchpad
func (o *Evolution) conductance(flow *img.Flt, mdl mdiff.Model) {
	n := len(flow.Pix)
	img.Parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			gx := float64(o.gx.Pix[i])
			gy := float64(o.gy.Pix[i])
			flow.Pix[i] = float32(mdl.G(gx*gx + gy*gy))
		}
	})
}

// derivatives fills the multiscale derivative bank: first and second
// spatial derivatives of Lt at each level i ≥ 1, taken with kernels
// sized to round(σ) and normalized by σ and σ² respectively. Levels are
// independent and run on separate workers.
func (o *Evolution) derivatives() {
	img.Parallel(len(o.Levels)-1, func(lo, hi int) {
		for li := lo + 1; li < hi+1; li++ {
			l := o.Levels[li]
			scale := l.SigmaPx
			if scale < 1 {
				scale = 1
			}
			img.Scharr(l.Lx, l.Lt, 1, 0, scale)
			img.Scharr(l.Ly, l.Lt, 0, 1, scale)
			img.Scharr(l.Lxx, l.Lx, 1, 0, scale)
			img.Scharr(l.Lxy, l.Lx, 0, 1, scale)
			img.Scharr(l.Lyy, l.Ly, 0, 1, scale)
			s1 := float32(l.Sigma)
			s2 := s1 * s1
			for i := range l.Lx.Pix {
				l.Lx.Pix[i] *= s1
				l.Ly.Pix[i] *= s1
				l.Lxx.Pix[i] *= s2
				l.Lxy.Pix[i] *= s2
				l.Lyy.Pix[i] *= s2
			}
		}
	})
}

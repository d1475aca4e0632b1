// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input options read from a (.kaz) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants fixed by the published KAZE formulation
const (
	KcontrastNbins      = 300  // number of histogram bins for the contrast estimator
	KcontrastPercentile = 0.70 // percentile of the gradient histogram defining k
	KcontrastDefault    = 0.01 // fallback contrast when the image has no gradients
)

// Options holds the configuration of the scale space, detector and descriptor.
// All fields are fixed after Validate; the pipeline never mutates them.
type Options struct {

	// scale space
	BaseSigma float64 `json:"basesigma"` // σ of evolution level 0
	Octaves   int     `json:"octaves"`   // number of octave doublings
	Sublevels int     `json:"sublevels"` // levels per octave
	Diffusiv  string  `json:"diffusiv"`  // diffusivity model name: "pmg1", "pmg2" or "weickert"
	SigmaDerv float64 `json:"sigmaderv"` // Gaussian pre-smoothing before conductance derivatives

	// detector
	Dthresh float64 `json:"dthresh"` // minimum accepted Hessian-determinant response

	// descriptor
	Descrip  string `json:"descrip"`  // descriptor family: "surf", "msurf" or "gsurf"
	Upright  bool   `json:"upright"`  // skip orientation estimation; descriptor axis = image axis
	Extended bool   `json:"extended"` // 128-component descriptor instead of 64

	// image dimensions
	Width  int `json:"width"`  // image width [pixels]
	Height int `json:"height"` // image height [pixels]
}

// NewOptions returns options with the default KAZE settings for the given
// image dimensions
func NewOptions(width, height int) *Options {
	return &Options{
		BaseSigma: 1.6,
		Octaves:   4,
		Sublevels: 4,
		Diffusiv:  "pmg2",
		SigmaDerv: 1.0,
		Dthresh:   1e-3,
		Descrip:   "msurf",
		Width:     width,
		Height:    height,
	}
}

// ReadOptions reads options from a JSON (.kaz) file
func ReadOptions(fnamepath string) (o *Options, err error) {
	b := io.ReadFile(fnamepath)
	o = NewOptions(0, 0)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse options file %q:\n%v", fnamepath, err)
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the configuration. It returns an error for non-positive
// octaves or sublevels, for negative dimensions and for unknown
// diffusivity or descriptor names. Zero dimensions are accepted.
func (o *Options) Validate() (err error) {
	if o.BaseSigma <= 0 {
		return chk.Err("basesigma must be positive. basesigma=%g is invalid", o.BaseSigma)
	}
	if o.Octaves < 1 {
		return chk.Err("at least one octave is required. octaves=%d is invalid", o.Octaves)
	}
	if o.Sublevels < 1 {
		return chk.Err("at least one sublevel per octave is required. sublevels=%d is invalid", o.Sublevels)
	}
	if o.SigmaDerv <= 0 {
		return chk.Err("sigmaderv must be positive. sigmaderv=%g is invalid", o.SigmaDerv)
	}
	if o.Width < 0 || o.Height < 0 {
		return chk.Err("image dimensions must not be negative. %dx%d is invalid", o.Width, o.Height)
	}
	switch o.Diffusiv {
	case "pmg1", "pmg2", "weickert":
	default:
		return chk.Err("diffusivity %q is not available. options are: 'pmg1', 'pmg2' and 'weickert'", o.Diffusiv)
	}
	switch o.Descrip {
	case "surf", "msurf", "gsurf":
	default:
		return chk.Err("descriptor %q is not available. options are: 'surf', 'msurf' and 'gsurf'", o.Descrip)
	}
	return
}

// Nlevels returns the number of evolution levels: 1 + octaves * sublevels
func (o *Options) Nlevels() int {
	return 1 + o.Octaves*o.Sublevels
}

// DescLen returns the descriptor length: 64, or 128 when extended
func (o *Options) DescLen() int {
	if o.Extended {
		return 128
	}
	return 64
}

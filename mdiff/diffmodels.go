// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdiff implements conductance models for nonlinear diffusion
// and the estimator of the contrast parameter k
package mdiff

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines conductance (diffusivity) models. G maps the squared
// gradient magnitude s2 = |∇L|² to a conductance in (0,1], with G(0) = 1.
type Model interface {
	Init(prms fun.Prms) error      // Init initialises this structure
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	G(s2 float64) float64          // G returns the conductance for squared gradient magnitude s2
}

// New conductance model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdiff' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

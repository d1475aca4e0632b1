// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdiff

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PMG1 implements the first Perona-Malik conductance
//
//   g1 = exp(-|∇L|² / k²)
//
// which favours high-contrast edges
type PMG1 struct {
	k  float64 // contrast parameter
	k2 float64 // k² (derived)
}

// add model to factory
func init() {
	allocators["pmg1"] = func() Model { return new(PMG1) }
}

// Init initialises model
func (o *PMG1) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.k = p.V
		default:
			return chk.Err("pmg1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.k <= 0 {
		return chk.Err("pmg1: contrast parameter k must be positive. k=%g is invalid", o.k)
	}
	o.k2 = o.k * o.k
	return
}

// GetPrms gets (an example) of parameters
func (o PMG1) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "k", V: 0.01},
	}
}

// G returns the conductance for squared gradient magnitude s2
func (o PMG1) G(s2 float64) float64 {
	return math.Exp(-s2 / o.k2)
}

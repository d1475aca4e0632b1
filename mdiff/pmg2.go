// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdiff

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PMG2 implements the second Perona-Malik conductance
//
//   g2 = 1 / (1 + |∇L|² / k²)
//
// which favours wide regions over smaller ones
type PMG2 struct {
	k  float64 // contrast parameter
	k2 float64 // k² (derived)
}

// add model to factory
func init() {
	allocators["pmg2"] = func() Model { return new(PMG2) }
}

// Init initialises model
func (o *PMG2) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.k = p.V
		default:
			return chk.Err("pmg2: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.k <= 0 {
		return chk.Err("pmg2: contrast parameter k must be positive. k=%g is invalid", o.k)
	}
	o.k2 = o.k * o.k
	return
}

// GetPrms gets (an example) of parameters
func (o PMG2) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "k", V: 0.01},
	}
}

// G returns the conductance for squared gradient magnitude s2
func (o PMG2) G(s2 float64) float64 {
	return 1.0 / (1.0 + s2/o.k2)
}

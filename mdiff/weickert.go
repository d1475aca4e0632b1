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

// Weickert implements Weickert's edge-enhancing conductance
//
//   g = 1 - exp(-3.315 / (|∇L|/k)⁸)
//
// with g = 1 on flat regions (|∇L| = 0). The literal constant 3.315
// makes the flux extremal at |∇L| = k.
type Weickert struct {
	k  float64 // contrast parameter
	k2 float64 // k² (derived)
}

// add model to factory
func init() {
	allocators["weickert"] = func() Model { return new(Weickert) }
}

// Init initialises model
func (o *Weickert) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.k = p.V
		default:
			return chk.Err("weickert: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.k <= 0 {
		return chk.Err("weickert: contrast parameter k must be positive. k=%g is invalid", o.k)
	}
	o.k2 = o.k * o.k
	return
}

// GetPrms gets (an example) of parameters
func (o Weickert) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "k", V: 0.01},
	}
}

// G returns the conductance for squared gradient magnitude s2
func (o Weickert) G(s2 float64) float64 {
	if s2 <= 0 {
		return 1.0
	}
	ratio := s2 / o.k2 // (|∇L|/k)²
	return 1.0 - math.Exp(-3.315/(ratio*ratio*ratio*ratio))
}

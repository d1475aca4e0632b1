// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdiff

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. registry and parameter protocol")

	_, err := New("wrong")
	if err == nil {
		tst.Errorf("unknown model did not fail")
		return
	}

	for _, name := range []string{"pmg1", "pmg2", "weickert"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}

		// k must be positive and unknown parameters must be rejected
		if mdl.Init(fun.Prms{&fun.Prm{N: "k", V: 0}}) == nil {
			tst.Errorf("%s: k=0 did not fail", name)
			return
		}
		if mdl.Init(fun.Prms{&fun.Prm{N: "wrong", V: 1}}) == nil {
			tst.Errorf("%s: unknown parameter did not fail", name)
			return
		}

		// example parameters must initialise
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("%s: cannot initialise with example parameters: %v\n", name, err)
			return
		}
	}
}

func Test_models02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models02. conductance values and bounds")

	k := 0.01
	prms := fun.Prms{&fun.Prm{N: "k", V: k}}

	g1, _ := New("pmg1")
	g2, _ := New("pmg2")
	wk, _ := New("weickert")
	for _, mdl := range []Model{g1, g2, wk} {
		err := mdl.Init(prms)
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}

		// flat regions conduct fully
		chk.Scalar(tst, "G(0)", 1e-15, mdl.G(0), 1.0)

		// conductance is in (0,1] and non-increasing in s2
		prev := 1.0
		for _, s := range utl.LinSpace(0, 10*k, 101) {
			g := mdl.G(s * s)
			if g <= 0 || g > 1 {
				tst.Errorf("conductance %v out of (0,1] at s=%v", g, s)
				return
			}
			if g > prev+1e-12 {
				tst.Errorf("conductance increased at s=%v: %v > %v", s, g, prev)
				return
			}
			prev = g
		}
	}

	// closed-form values at |∇L| = k
	chk.Scalar(tst, "g1(k²)", 1e-15, g1.G(k*k), math.Exp(-1.0))
	chk.Scalar(tst, "g2(k²)", 1e-15, g2.G(k*k), 0.5)
	chk.Scalar(tst, "wk(k²)", 1e-15, wk.G(k*k), 1.0-math.Exp(-3.315))
	io.Pforan("g1(k²)=%v g2(k²)=%v wk(k²)=%v\n", g1.G(k*k), g2.G(k*k), wk.G(k*k))
}

// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nss

import (
	"testing"

	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_ladder01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ladder01. schedule indices, σ doubling and monotonicity")

	opts := inp.NewOptions(64, 48)
	opts.Octaves = 3
	opts.Sublevels = 4
	levels := NewLadder(opts)
	chk.IntAssert(len(levels), 13)

	// level 0 sits at the base scale
	chk.Scalar(tst, "σ0", 1e-15, levels[0].Sigma, opts.BaseSigma)
	chk.Scalar(tst, "t0", 1e-15, levels[0].T, 0.5*1.6*1.6)
	chk.IntAssert(levels[0].Octave, 0)
	chk.IntAssert(levels[0].Sublevel, 0)

	// one octave doubles σ
	chk.Scalar(tst, "σ4/σ0", 1e-14, levels[4].Sigma/levels[0].Sigma, 2.0)
	chk.IntAssert(levels[4].Octave, 1)
	chk.IntAssert(levels[4].Sublevel, 0)
	chk.IntAssert(levels[11].Octave, 2)
	chk.IntAssert(levels[11].Sublevel, 3)

	// octave and sublevel indices follow div/mod of the level index
	var octs, subs []int
	for i, l := range levels {
		octs = append(octs, l.Octave)
		subs = append(subs, l.Sublevel)
		chk.IntAssert(l.Octave, i/opts.Sublevels)
	}
	chk.Ints(tst, "octaves", octs, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3})
	subsCor := append(append(append(utl.IntRange(4), utl.IntRange(4)...), utl.IntRange(4)...), 0)
	chk.Ints(tst, "sublevels", subs, subsCor)

	// strictly increasing σ and t
	for i := 1; i < len(levels); i++ {
		io.Pforan("level %2d: o=%d s=%d σ=%8.4f t=%8.4f px=%d\n", i,
			levels[i].Octave, levels[i].Sublevel, levels[i].Sigma, levels[i].T, levels[i].SigmaPx)
		if levels[i].Sigma <= levels[i-1].Sigma {
			tst.Errorf("σ is not strictly increasing at level %d", i)
			return
		}
		if levels[i].T <= levels[i-1].T {
			tst.Errorf("t is not strictly increasing at level %d", i)
			return
		}
		chk.Scalar(tst, io.Sf("t%d", i), 1e-14, levels[i].T, 0.5*levels[i].Sigma*levels[i].Sigma)
	}
}

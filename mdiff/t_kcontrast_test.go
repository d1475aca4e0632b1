// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdiff

import (
	"testing"

	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_kcon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kcon01. degenerate images fall back to the default")

	// flat image has no gradients
	flat := img.NewFlt(64, 64)
	flat.Fill(0.5)
	chk.Scalar(tst, "k(flat)", 1e-15, KContrast(flat, 1.0), inp.KcontrastDefault)

	// images too small for the 3x3 kernels
	tiny := img.NewFlt(2, 2)
	chk.Scalar(tst, "k(2x2)", 1e-15, KContrast(tiny, 1.0), inp.KcontrastDefault)
}

func Test_kcon02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kcon02. uniform ramp concentrates the histogram")

	// on x*slope every pixel away from the left and right borders has the
	// same gradient magnitude, so the 70th percentile lands on it
	w, h := 96, 64
	slope := 1.0 / float64(w)
	ramp := img.NewFlt(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ramp.Set(x, y, float32(slope*float64(x)))
		}
	}
	k := KContrast(ramp, 1.0)
	io.Pforan("slope=%v k=%v\n", slope, k)
	chk.Scalar(tst, "k(ramp)", slope*0.05, k, slope)
}

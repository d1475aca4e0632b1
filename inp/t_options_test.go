// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_opts01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opts01. defaults and validation")

	o := NewOptions(640, 480)
	err := o.Validate()
	if err != nil {
		tst.Errorf("Validate failed:\n%v", err)
		return
	}
	chk.Float64(tst, "basesigma", 1e-15, o.BaseSigma, 1.6)
	chk.IntAssert(o.Octaves, 4)
	chk.IntAssert(o.Sublevels, 4)
	chk.IntAssert(o.Nlevels(), 17)
	chk.IntAssert(o.DescLen(), 64)
	o.Extended = true
	chk.IntAssert(o.DescLen(), 128)

	// invalid configurations must not validate
	bad := []*Options{
		{BaseSigma: 0, Octaves: 4, Sublevels: 4, SigmaDerv: 1, Diffusiv: "pmg2", Descrip: "msurf"},
		{BaseSigma: 1.6, Octaves: 0, Sublevels: 4, SigmaDerv: 1, Diffusiv: "pmg2", Descrip: "msurf"},
		{BaseSigma: 1.6, Octaves: 4, Sublevels: 0, SigmaDerv: 1, Diffusiv: "pmg2", Descrip: "msurf"},
		{BaseSigma: 1.6, Octaves: 4, Sublevels: 4, SigmaDerv: 1, Diffusiv: "wrong", Descrip: "msurf"},
		{BaseSigma: 1.6, Octaves: 4, Sublevels: 4, SigmaDerv: 1, Diffusiv: "pmg2", Descrip: "wrong"},
		{BaseSigma: 1.6, Octaves: 4, Sublevels: 4, SigmaDerv: 1, Diffusiv: "pmg2", Descrip: "msurf", Width: -1},
	}
	for i, b := range bad {
		if b.Validate() == nil {
			tst.Errorf("case %d: invalid options did validate", i)
			return
		}
	}
}

func Test_opts02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opts02. read options from JSON file")

	fname := "/tmp/gokaze_opts02.kaz"
	var buf bytes.Buffer
	io.Ff(&buf, `{
  "basesigma" : 1.6,
  "octaves"   : 2,
  "sublevels" : 3,
  "diffusiv"  : "weickert",
  "sigmaderv" : 1.0,
  "dthresh"   : 0.001,
  "descrip"   : "gsurf",
  "upright"   : true,
  "extended"  : true,
  "width"     : 256,
  "height"    : 192
}`)
	io.WriteFile(fname, &buf)

	o, err := ReadOptions(fname)
	if err != nil {
		tst.Errorf("ReadOptions failed:\n%v", err)
		return
	}
	chk.IntAssert(o.Octaves, 2)
	chk.IntAssert(o.Sublevels, 3)
	chk.IntAssert(o.Nlevels(), 7)
	chk.StrAssert(o.Diffusiv, "weickert")
	chk.StrAssert(o.Descrip, "gsurf")
	chk.IntAssert(o.Width, 256)
	chk.IntAssert(o.Height, 192)
	if !o.Upright || !o.Extended {
		tst.Errorf("upright/extended flags were not read")
	}
}

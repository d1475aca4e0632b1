// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"flag"
	"math"
	"time"

	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gokaze/kaze"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGokaze -- nonlinear scale space features\n\n")
	io.Pf("Copyright 2016 The Gokaze Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// options and image filepaths
	flag.Parse()
	if len(flag.Args()) < 2 {
		chk.Panic("Please, provide an options file and an image. Ex.: gokaze frame.kaz frame.f32")
	}
	fnopts := flag.Arg(0)
	if io.FnExt(fnopts) == "" {
		fnopts += ".kaz"
	}
	fnimg := flag.Arg(1)

	// read options
	opts, err := inp.ReadOptions(fnopts)
	if err != nil {
		chk.Panic("cannot read options:\n%v", err)
	}

	// read raw little-endian float32 image of width x height pixels
	src, err := readRawImage(fnimg, opts.Width, opts.Height)
	if err != nil {
		chk.Panic("cannot read image:\n%v", err)
	}

	// run pipeline
	o, err := kaze.New(opts)
	if err != nil {
		chk.Panic("cannot allocate pipeline:\n%v", err)
	}
	o.Timing = func(stage string, d time.Duration) {
		io.Pfgrey("  %-12s %v\n", stage, d)
	}
	kpts, descriptors, err := o.DetectAndCompute(src)
	if err != nil {
		chk.Panic("feature extraction failed:\n%v", err)
	}

	// report
	io.Pf("\nkcontrast = %g\n", o.Evo.Kcontrast)
	io.Pf("nkeypoints = %d\n\n", len(kpts))
	io.Pf("%8s %8s %8s %10s %8s\n", "x", "y", "sigma", "response", "angle")
	for _, k := range kpts {
		io.Pf("%8.2f %8.2f %8.3f %10.2e %8.3f\n", k.X, k.Y, k.Sigma, k.Response, k.Angle)
	}
	if len(descriptors) > 0 {
		io.Pf("\ndescriptor length = %d\n", len(descriptors[0]))
	}
}

// readRawImage reads a headerless little-endian float32 image file
func readRawImage(fnamepath string, width, height int) (o *img.Flt, err error) {
	b := io.ReadFile(fnamepath)
	if len(b) < 4*width*height {
		return nil, chk.Err("image file %q is too short: %d bytes for %dx%d float32 pixels", fnamepath, len(b), width, height)
	}
	o = img.NewFlt(width, height)
	for i := range o.Pix {
		o.Pix[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return
}

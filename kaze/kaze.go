// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kaze glues the nonlinear scale space, the multiscale detector
// and the descriptor families into the feature-extraction pipeline
package kaze

import (
	"time"

	"github.com/cpmech/gokaze/desc"
	"github.com/cpmech/gokaze/det"
	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gokaze/nss"
	"github.com/cpmech/gosl/chk"
)

// TimeSink receives named stage durations. A nil sink discards them.
type TimeSink func(stage string, d time.Duration)

// KAZE holds all data for extracting features from images of one fixed
// size. Each KAZE value owns its buffers; concurrent extractions need
// one value each.
type KAZE struct {
	Opts   *inp.Options   // configuration (read-only after New)
	Evo    *nss.Evolution // evolution records; read-only outside Detect
	Timing TimeSink       // optional sink for per-stage timings

	// derived
	built bool // scale space ready for Describe
}

// New validates the options and allocates the pipeline
func New(opts *inp.Options) (o *KAZE, err error) {
	evo, err := nss.NewEvolution(opts)
	if err != nil {
		return nil, err
	}
	return &KAZE{Opts: opts, Evo: evo}, nil
}

// Detect builds the nonlinear scale space for src and returns the
// detected keypoints ordered by level and, within a level, by the pixel
// (y, x) at which each was found before subpixel refinement. The image
// dimensions must match the configured ones; empty images return an
// empty list.
func (o *KAZE) Detect(src *img.Flt) (kpts []*det.Keypoint, err error) {
	if src.Width != o.Opts.Width || src.Height != o.Opts.Height {
		return nil, chk.Err("image dimensions %dx%d do not match the configured %dx%d", src.Width, src.Height, o.Opts.Width, o.Opts.Height)
	}
	if o.Opts.Width == 0 || o.Opts.Height == 0 {
		o.built = true
		return
	}

	t0 := time.Now()
	err = o.Evo.Run(src)
	if err != nil {
		return nil, err
	}
	o.stamp("scalespace", t0)

	t0 = time.Now()
	det.ComputeResponse(o.Evo.Levels)
	o.stamp("response", t0)

	t0 = time.Now()
	kpts = det.Find(o.Evo.Levels, o.Opts)
	o.stamp("detector", t0)
	o.built = true
	return
}

// Describe computes one descriptor row per keypoint, in the keypoint
// order, from the scale space built by the last Detect. Unless the
// configuration is upright, the dominant orientation of each keypoint
// is estimated first. Keypoints are partitioned across workers; rows
// land in their keypoint's slot so the output is deterministic.
func (o *KAZE) Describe(kpts []*det.Keypoint) (descriptors [][]float32, err error) {
	if !o.built {
		return nil, chk.Err("Describe requires a scale space; call Detect first")
	}
	descriptors = make([][]float32, len(kpts))
	if len(kpts) == 0 {
		return
	}

	t0 := time.Now()
	img.Parallel(len(kpts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			k := kpts[i]
			l := o.Evo.Levels[k.Level]
			if !o.Opts.Upright {
				desc.Orientation(l, k)
			}
			descriptors[i] = desc.Compute(l, k, o.Opts)
		}
	})
	o.stamp("descriptor", t0)
	return
}

// DetectAndCompute runs Detect followed by Describe
func (o *KAZE) DetectAndCompute(src *img.Flt) (kpts []*det.Keypoint, descriptors [][]float32, err error) {
	kpts, err = o.Detect(src)
	if err != nil {
		return
	}
	descriptors, err = o.Describe(kpts)
	return
}

// stamp publishes one stage duration
func (o *KAZE) stamp(stage string, t0 time.Time) {
	if o.Timing != nil {
		o.Timing(stage, time.Now().Sub(t0))
	}
}

// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"math"

	"github.com/cpmech/gokaze/det"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gokaze/nss"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// pattern parameterizes one descriptor family. The twelve descriptor
// variants (family x upright x extended) collapse into one sampler
// driven by these values plus the response function.
type pattern struct {
	starts    []int   // subregion start offsets [units of s]
	size      int     // samples per subregion side
	sigma1    float64 // per-sample Gaussian σ [units of s]
	onKpt     bool    // σ1 weight centered on the keypoint instead of the subregion
	sigma2    float64 // per-subregion Gaussian σ [subregion index units]; 0 disables
	secondOrd bool    // sample the second-order gauge responses instead of (Lx,Ly)
}

var (
	// SURF: 20s x 20s, 4x4 disjoint subregions of 5x5 samples, one
	// Gaussian centered on the keypoint
	surfPattern = pattern{
		starts: []int{-10, -5, 0, 5},
		size:   5,
		sigma1: 3.3,
		onKpt:  true,
	}

	// M-SURF: 24s x 24s, 4x4 subregions of 9x9 samples overlapping by
	// 4s, per-sample weight around the subregion center plus a
	// per-subregion weight
	msurfPattern = pattern{
		starts: []int{-12, -7, -2, 3},
		size:   9,
		sigma1: 2.5,
		sigma2: 1.5,
	}

	// G-SURF: the M-SURF layout over second-order gauge responses
	gsurfPattern = pattern{
		starts:    []int{-12, -7, -2, 3},
		size:      9,
		sigma1:    2.5,
		sigma2:    1.5,
		secondOrd: true,
	}
)

// Compute builds the descriptor of one keypoint from the derivative
// images of its evolution level, dispatching on the configured family,
// uprightness and length. The returned vector has unit L2 norm unless
// the neighborhood is fully degenerate.
func Compute(l *nss.Level, kpt *det.Keypoint, opts *inp.Options) []float32 {
	var p pattern
	switch opts.Descrip {
	case "surf":
		p = surfPattern
	case "msurf":
		p = msurfPattern
	case "gsurf":
		p = gsurfPattern
	default:
		chk.Panic("descriptor family %q is not available", opts.Descrip)
	}
	co, si := 1.0, 0.0
	if !opts.Upright {
		co = math.Cos(kpt.Angle)
		si = math.Sin(kpt.Angle)
	}
	return sample(l, kpt, p, co, si, opts.Extended)
}

// sample runs the parameterized descriptor sampler. Grid offsets (u,v)
// live on the axes rotated by the keypoint angle; responses are rotated
// into the same frame so the descriptor is covariant with the keypoint
// orientation.
func sample(l *nss.Level, kpt *det.Keypoint, p pattern, co, si float64, extended bool) []float32 {
	s := int(kpt.Sigma + 0.5)
	if s < 1 {
		s = 1
	}
	scale := float64(s)
	nsub := len(p.starts)
	per := 4
	if extended {
		per = 8
	}
	vals := make([]float64, nsub*nsub*per)

	dcount := 0
	for vi, vstart := range p.starts {
		for ui, ustart := range p.starts {

			// center of this subregion on the rotated grid [units of s]
			uc := float64(ustart) + float64(p.size)/2.0
			vc := float64(vstart) + float64(p.size)/2.0
			xs := kpt.X + (uc*co-vc*si)*scale
			ys := kpt.Y + (uc*si+vc*co)*scale

			var sums [8]float64
			for v := vstart; v < vstart+p.size; v++ {
				for u := ustart; u < ustart+p.size; u++ {

					// sample position on the rotated axes
					x := kpt.X + (float64(u)*co-float64(v)*si)*scale
					y := kpt.Y + (float64(u)*si+float64(v)*co)*scale

					// per-sample Gaussian weight
					var gdx, gdy float64
					if p.onKpt {
						gdx, gdy = x-kpt.X, y-kpt.Y
					} else {
						gdx, gdy = x-xs, y-ys
					}
					sw := p.sigma1 * scale
					g1 := math.Exp(-(gdx*gdx + gdy*gdy) / (2.0 * sw * sw))

					// responses rotated into the keypoint frame
					rx := float64(l.Lx.Bilinear(x, y))
					ry := float64(l.Ly.Bilinear(x, y))
					if p.secondOrd {
						rxx := float64(l.Lxx.Bilinear(x, y))
						rxy := float64(l.Lxy.Bilinear(x, y))
						ryy := float64(l.Lyy.Bilinear(x, y))
						rx, ry = rxx*rx+rxy*ry, rxy*rx+ryy*ry
					}
					du := g1 * (rx*co + ry*si)
					dv := g1 * (-rx*si + ry*co)

					if extended {
						// sums split by the sign of the other component
						if dv >= 0 {
							sums[0] += du
							sums[2] += math.Abs(du)
						} else {
							sums[1] += du
							sums[3] += math.Abs(du)
						}
						if du >= 0 {
							sums[4] += dv
							sums[6] += math.Abs(dv)
						} else {
							sums[5] += dv
							sums[7] += math.Abs(dv)
						}
					} else {
						sums[0] += du
						sums[1] += dv
						sums[2] += math.Abs(du)
						sums[3] += math.Abs(dv)
					}
				}
			}

			// per-subregion Gaussian weight
			g2 := 1.0
			if p.sigma2 > 0 {
				cu := float64(ui) - float64(nsub-1)/2.0
				cv := float64(vi) - float64(nsub-1)/2.0
				g2 = math.Exp(-(cu*cu + cv*cv) / (2.0 * p.sigma2 * p.sigma2))
			}
			for k := 0; k < per; k++ {
				vals[dcount] = sums[k] * g2
				dcount++
			}
		}
	}

	// unit length
	out := make([]float32, len(vals))
	norm := la.VecNorm(vals)
	if norm > 0 {
		for i, v := range vals {
			out[i] = float32(v / norm)
		}
	}
	return out
}

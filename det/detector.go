// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package det

import (
	"github.com/cpmech/gokaze/img"
	"github.com/cpmech/gokaze/inp"
	"github.com/cpmech/gokaze/nss"
)

// ComputeResponse fills Ldet = Lxx*Lyy - Lxy² for every level i ≥ 1.
// The derivatives are already σ-normalized, so the determinant carries
// the σ⁴ factor that makes responses comparable across levels.
func ComputeResponse(levels []*nss.Level) {
	img.Parallel(len(levels)-1, func(lo, hi int) {
		for li := lo + 1; li < hi+1; li++ {
			l := levels[li]
			for i := range l.Ldet.Pix {
				l.Ldet.Pix[i] = l.Lxx.Pix[i]*l.Lyy.Pix[i] - l.Lxy.Pix[i]*l.Lxy.Pix[i]
			}
		}
	})
}

// Find searches the response volume for scale-space extrema and refines
// them to subpixel accuracy. Levels are scanned on independent workers
// into per-level buckets; the buckets are then concatenated in level
// order, so the result is deterministic with ties broken by
// (level, y, x) ascending.
func Find(levels []*nss.Level, opts *inp.Options) (kpts []*Keypoint) {
	n := len(levels)
	if n < 3 {
		return
	}

	// per-level candidate buckets; interior levels only
	buckets := make([][]*Keypoint, n)
	img.Parallel(n-2, func(lo, hi int) {
		for li := lo + 1; li < hi+1; li++ {
			buckets[li] = scanLevel(levels, li, opts.Dthresh)
		}
	})

	// concatenate in level order and reconcile across levels
	var cands []*Keypoint
	for li := 1; li < n-1; li++ {
		cands = append(cands, buckets[li]...)
	}
	cands = suppress(cands)

	// subpixel refinement; failures drop the candidate
	for _, c := range cands {
		if refine(levels, c, opts.Sublevels) {
			kpts = append(kpts, c)
		}
	}
	return
}

// scanLevel finds the strict 3x3x3 maxima of level li above the
// detector threshold, scanning the interior window in (y,x) order
func scanLevel(levels []*nss.Level, li int, thresh float64) (bucket []*Keypoint) {
	l := levels[li]
	w, h := l.Ldet.Width, l.Ldet.Height
	border := 1 + l.SigmaPx
	if border < 1 {
		border = 1
	}
	dn := levels[li-1].Ldet
	up := levels[li+1].Ldet
	for y := border; y < h-border; y++ {
		for x := border; x < w-border; x++ {
			v := l.Ldet.At(x, y)
			if float64(v) <= thresh {
				continue
			}
			if !isMaximum(l.Ldet, dn, up, x, y, v) {
				continue
			}
			bucket = append(bucket, &Keypoint{
				X:        float64(x),
				Y:        float64(y),
				Sigma:    l.Sigma,
				Response: float64(v),
				Level:    li,
				Octave:   l.Octave,
				Sublevel: l.Sublevel,
			})
		}
	}
	return
}

// isMaximum reports whether v at (x,y) strictly dominates its 26
// neighbors in the 3x3x3 response neighborhood
func isMaximum(mid, dn, up *img.Flt, x, y int, v float32) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dn.At(x+dx, y+dy) >= v {
				return false
			}
			if up.At(x+dx, y+dy) >= v {
				return false
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if mid.At(x+dx, y+dy) >= v {
				return false
			}
		}
	}
	return true
}

// suppress applies the spatial suppression across levels: a candidate
// within distance σ of an accepted one on the same or a neighboring
// level survives only if its response is larger, in which case it
// evicts the accepted one. Candidates arrive ordered by (level, y, x),
// which makes equal-response conflicts resolve toward the earlier one.
func suppress(cands []*Keypoint) (out []*Keypoint) {
	for _, c := range cands {
		drop := false
		var weaker []int
		for j := 0; j < len(out); j++ {
			a := out[j]
			dl := c.Level - a.Level
			if dl < -1 || dl > 1 {
				continue
			}
			dx := c.X - a.X
			dy := c.Y - a.Y
			if dx*dx+dy*dy >= c.Sigma*c.Sigma {
				continue
			}
			if a.Response >= c.Response {
				drop = true
				break
			}
			// the weaker accepted candidate is evicted if c survives
			weaker = append(weaker, j)
		}
		if !drop {
			for k := len(weaker) - 1; k >= 0; k-- {
				j := weaker[k]
				out = append(out[:j], out[j+1:]...)
			}
			out = append(out, c)
		}
	}
	return
}

// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package det

import (
	"math"

	"github.com/cpmech/gokaze/nss"
	"github.com/cpmech/gosl/la"
)

// refine fits a 3-D quadratic to the response around the candidate and
// moves it to the extremum of the fit. The finite-difference gradient
// and Hessian are taken in (x, y, level). It returns false, dropping
// the candidate, when the Hessian is singular or when any offset
// component exceeds one sample, and updates position and σ otherwise.
// sublevels is the number of sublevels per octave, needed to map the
// level offset onto a σ factor.
func refine(levels []*nss.Level, c *Keypoint, sublevels int) bool {
	x, y, li := int(c.X), int(c.Y), c.Level
	dn := levels[li-1].Ldet
	mi := levels[li].Ldet
	up := levels[li+1].Ldet

	at := func(l int, xx, yy int) float64 {
		switch l {
		case -1:
			return float64(dn.At(xx, yy))
		case 1:
			return float64(up.At(xx, yy))
		}
		return float64(mi.At(xx, yy))
	}

	// gradient
	gx := 0.5 * (at(0, x+1, y) - at(0, x-1, y))
	gy := 0.5 * (at(0, x, y+1) - at(0, x, y-1))
	gl := 0.5 * (at(1, x, y) - at(-1, x, y))

	// Hessian
	v := at(0, x, y)
	hxx := at(0, x+1, y) - 2.0*v + at(0, x-1, y)
	hyy := at(0, x, y+1) - 2.0*v + at(0, x, y-1)
	hll := at(1, x, y) - 2.0*v + at(-1, x, y)
	hxy := 0.25 * (at(0, x+1, y+1) - at(0, x+1, y-1) - at(0, x-1, y+1) + at(0, x-1, y-1))
	hxl := 0.25 * (at(1, x+1, y) - at(1, x-1, y) - at(-1, x+1, y) + at(-1, x-1, y))
	hyl := 0.25 * (at(1, x, y+1) - at(1, x, y-1) - at(-1, x, y+1) + at(-1, x, y-1))

	H := la.MatAlloc(3, 3)
	H[0][0], H[0][1], H[0][2] = hxx, hxy, hxl
	H[1][0], H[1][1], H[1][2] = hxy, hyy, hyl
	H[2][0], H[2][1], H[2][2] = hxl, hyl, hll

	// solve H δ = -g
	dx, dy, dl, ok := solve3(H, -gx, -gy, -gl)
	if !ok {
		return false
	}
	if math.Abs(dx) > 1.0 || math.Abs(dy) > 1.0 || math.Abs(dl) > 1.0 {
		return false
	}

	c.X += dx
	c.Y += dy
	c.Sigma *= math.Pow(2.0, dl/float64(sublevels))
	return true
}

// solve3 solves a 3x3 system by cofactor expansion. A vanishing
// determinant reports a singular Hessian instead of exploding, which is
// what the dropped-candidate semantics needs.
func solve3(A [][]float64, b0, b1, b2 float64) (x0, x1, x2 float64, ok bool) {
	c00 := A[1][1]*A[2][2] - A[1][2]*A[2][1]
	c01 := A[1][2]*A[2][0] - A[1][0]*A[2][2]
	c02 := A[1][0]*A[2][1] - A[1][1]*A[2][0]
	det := A[0][0]*c00 + A[0][1]*c01 + A[0][2]*c02
	if math.Abs(det) < 1e-30 || math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, 0, 0, false
	}
	x0 = (b0*c00 + A[0][1]*(A[1][2]*b2-b1*A[2][2]) + A[0][2]*(b1*A[2][1]-A[1][1]*b2)) / det
	x1 = (A[0][0]*(b1*A[2][2]-A[1][2]*b2) + b0*c01 + A[0][2]*(A[1][0]*b2-b1*A[2][0])) / det
	x2 = (A[0][0]*(A[1][1]*b2-b1*A[2][1]) + A[0][1]*(b1*A[2][0]-A[1][0]*b2) + b0*c02) / det
	return x0, x1, x2, true
}

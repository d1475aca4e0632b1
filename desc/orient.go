// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package desc implements the dominant-orientation estimator and the
// SURF / M-SURF / G-SURF descriptor families sampled on the nonlinear
// scale space
package desc

import (
	"math"

	"github.com/cpmech/gokaze/det"
	"github.com/cpmech/gokaze/nss"
)

// sector constants of the orientation estimator
const (
	sectorWidth = math.Pi / 3.0  // angular width of the sliding sector
	sectorStep  = math.Pi / 36.0 // rotation step of the sliding sector
)

// Orientation estimates the dominant orientation of the keypoint from
// the first derivatives of its evolution level and stores it in
// kpt.Angle. Responses are sampled on a grid of step s = round(σ)
// inside a circle of radius 6s, weighted by a Gaussian of σw = 2.5s,
// and swept by a sector of width π/3 rotating in steps of π/36; the
// winner is the sector with the largest accumulated response vector.
func Orientation(l *nss.Level, kpt *det.Keypoint) {
	s := int(kpt.Sigma + 0.5)
	if s < 1 {
		s = 1
	}
	sw := 2.5 * float64(s)

	// weighted responses inside the circular neighborhood
	var resX, resY, resAng []float64
	for j := -6; j <= 6; j++ {
		for i := -6; i <= 6; i++ {
			if i*i+j*j >= 36 {
				continue
			}
			x := kpt.X + float64(i*s)
			y := kpt.Y + float64(j*s)
			dx := x - kpt.X
			dy := y - kpt.Y
			gw := math.Exp(-(dx*dx + dy*dy) / (2.0 * sw * sw))
			rx := gw * float64(l.Lx.Bilinear(x, y))
			ry := gw * float64(l.Ly.Bilinear(x, y))
			resX = append(resX, rx)
			resY = append(resY, ry)
			resAng = append(resAng, angle2pi(ry, rx))
		}
	}

	// sliding sector
	maxMod := -1.0
	for ang1 := 0.0; ang1 < 2.0*math.Pi; ang1 += sectorStep {
		ang2 := ang1 + sectorWidth
		sumX, sumY := 0.0, 0.0
		for i, a := range resAng {
			inside := a > ang1 && a < ang2
			if ang2 > 2.0*math.Pi {
				inside = inside || a < ang2-2.0*math.Pi
			}
			if inside {
				sumX += resX[i]
				sumY += resY[i]
			}
		}
		mod := sumX*sumX + sumY*sumY
		if mod > maxMod {
			maxMod = mod
			kpt.Angle = angle2pi(sumY, sumX)
		}
	}
}

// angle2pi returns atan2(y,x) mapped to [0,2π)
func angle2pi(y, x float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2.0 * math.Pi
	}
	return a
}

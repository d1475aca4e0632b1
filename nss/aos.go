// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nss

import (
	"math"

	"github.com/cpmech/gokaze/img"
)

// Aos performs implicit diffusion steps by Additive Operator Splitting:
//
//   L_new = ½ [ (I - 2Δt Ax)⁻¹ L + (I - 2Δt Ay)⁻¹ L ]
//
// where Ax and Ay are the 1-D diffusion operators along rows and
// columns driven by a conductance image. Each tridiagonal factor is
// solved directly with the Thomas algorithm, so the scheme is
// unconditionally stable for conductances in (0,1].
type Aos struct {

	// scratchpad
	tx *img.Flt // row-solve result
	ty *img.Flt // column-solve result
}

// NewAos allocates the workspace for images of the given dimensions
func NewAos(width, height int) *Aos {
	return &Aos{
		tx: img.NewFlt(width, height),
		ty: img.NewFlt(width, height),
	}
}

// Step advances src by one implicit step of size dt driven by the
// conductance image flow and writes the result to dst. Row solves and
// column solves run on independent goroutine partitions. Pixels whose
// update is not finite keep their src value.
func (o *Aos) Step(dst, src, flow *img.Flt, dt float64) {
	w, h := src.Width, src.Height
	if w < 2 || h < 2 {
		dst.CopyFrom(src)
		return
	}

	// row sweeps: one tridiagonal system per row
	img.Parallel(h, func(lo, hi int) {
		cp := make([]float64, w)
		dp := make([]float64, w)
		for y := lo; y < hi; y++ {
			row := src.Pix[y*w : (y+1)*w]
			c := flow.Pix[y*w : (y+1)*w]
			out := o.tx.Pix[y*w : (y+1)*w]
			thomas(out, row, c, 1, w, dt, cp, dp)
		}
	})

	// column sweeps: one tridiagonal system per column
	img.Parallel(w, func(lo, hi int) {
		cp := make([]float64, h)
		dp := make([]float64, h)
		for x := lo; x < hi; x++ {
			thomas(o.ty.Pix[x:], src.Pix[x:], flow.Pix[x:], w, h, dt, cp, dp)
		}
	})

	// average of the two splittings; non-finite updates fall back to src
	img.Parallel(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				v := 0.5 * (o.tx.Pix[i] + o.ty.Pix[i])
				if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
					v = src.Pix[i]
				}
				dst.Pix[i] = v
			}
		}
	})
}

// thomas solves one tridiagonal system (I - 2Δt A) x = d along a line of
// n samples with stride between consecutive samples. The 1-D operator A
// couples neighbors through the averaged conductances
//
//   q_j = c_j + c_{j+1}
//
// giving off-diagonals -Δt q_j and diagonal 1 + Δt (q_{j-1} + q_j),
// where q terms beyond the ends vanish (Neumann boundary, zero flux).
// cp and dp are caller scratch of length n.
func thomas(out, line, cond []float32, stride, n int, dt float64, cp, dp []float64) {

	// forward sweep
	q0 := dt * float64(cond[0]+cond[stride])
	b0 := 1.0 + q0
	cp[0] = -q0 / b0
	dp[0] = float64(line[0]) / b0
	for j := 1; j < n; j++ {
		qm := dt * float64(cond[(j-1)*stride]+cond[j*stride])
		var qj float64
		if j < n-1 {
			qj = dt * float64(cond[j*stride]+cond[(j+1)*stride])
		}
		b := 1.0 + qm + qj
		m := b + qm*cp[j-1] // b - sub*cp, sub = -qm
		cp[j] = -qj / m
		dp[j] = (float64(line[j*stride]) + qm*dp[j-1]) / m
	}

	// back substitution
	out[(n-1)*stride] = float32(dp[n-1])
	x := dp[n-1]
	for j := n - 2; j >= 0; j-- {
		x = dp[j] - cp[j]*x
		out[j*stride] = float32(x)
	}
}

// Copyright 2016 The Gokaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package det implements the multiscale blob detector: the normalized
// Hessian-determinant response, 3-D non-maximum suppression across the
// evolution levels and subpixel refinement of the accepted extrema
package det

// Keypoint holds one detected feature
type Keypoint struct {
	X, Y     float64 // subpixel position [pixels]
	Sigma    float64 // scale σ
	Response float64 // Hessian-determinant response
	Level    int     // evolution level index
	Octave   int     // octave of the level
	Sublevel int     // sublevel within the octave
	Angle    float64 // dominant orientation [radians]; 0 until orientation runs
	ClassID  int     // free tag for callers
}

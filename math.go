// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "math"

func abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func lerp[T Number](a, b T, alpha float64) T {
	fa := float64(a)
	return T(fa + (float64(b)-fa)*alpha)
}

func equalTol[T Number](a, b T, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}

// det3 returns the determinant of the 3x3 matrix with the given rows.
func det3[T Number](a0, a1, a2, b0, b1, b2, c0, c1, c2 T) T {
	return a0*(b1*c2-b2*c1) - a1*(b0*c2-b2*c0) + a2*(b0*c1-b1*c0)
}

// norm returns the Euclidean norm of the given components. When the
// sum of squares overflows or loses precision to underflow, the
// components are first divided by the largest magnitude, as in [math.Hypot].
func norm(c ...float64) float64 {
	s := 0.0
	for _, x := range c {
		s += x * x
	}
	if s >= 0x1p-968 && !math.IsInf(s, 1) || math.IsNaN(s) {
		return math.Sqrt(s)
	}
	m := 0.0
	for _, x := range c {
		m = max(m, math.Abs(x))
	}
	if m == 0 || math.IsInf(m, 1) {
		return m
	}
	s = 0
	for _, x := range c {
		x /= m
		s += x * x
	}
	return m * math.Sqrt(s)
}

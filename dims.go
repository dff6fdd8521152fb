// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

//go:generate stringer -type=Dims

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// DimsN is the number of [Dims] values.
const DimsN = W + 1

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}

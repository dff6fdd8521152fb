// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components,
// also addressable as R, G, B, A colors and S, T, P, Q texture coordinates.
type Vector4[T Number] [4]T

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar[T Number](s T) Vector4[T] {
	return Vector4[T]{s, s, s, s}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3[T Number](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], w}
}

// Vector4Convert returns the given vector with its components
// converted to element type U.
func Vector4Convert[U, T Number](v Vector4[T]) Vector4[U] {
	return Vector4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

// X returns the X component.
func (v Vector4[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector4[T]) Y() T { return v[1] }

// Z returns the Z component.
func (v Vector4[T]) Z() T { return v[2] }

// W returns the W component.
func (v Vector4[T]) W() T { return v[3] }

// R returns the red color component, which is the X component.
func (v Vector4[T]) R() T { return v[0] }

// G returns the green color component, which is the Y component.
func (v Vector4[T]) G() T { return v[1] }

// B returns the blue color component, which is the Z component.
func (v Vector4[T]) B() T { return v[2] }

// A returns the alpha color component, which is the W component.
func (v Vector4[T]) A() T { return v[3] }

// S returns the S texture coordinate, which is the X component.
func (v Vector4[T]) S() T { return v[0] }

// T returns the T texture coordinate, which is the Y component.
func (v Vector4[T]) T() T { return v[1] }

// P returns the P texture coordinate, which is the Z component.
func (v Vector4[T]) P() T { return v[2] }

// Q returns the Q texture coordinate, which is the W component.
func (v Vector4[T]) Q() T { return v[3] }

// SetX sets the X component.
func (v *Vector4[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector4[T]) SetY(y T) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector4[T]) SetZ(z T) { v[2] = z }

// SetW sets the W component.
func (v *Vector4[T]) SetW(w T) { v[3] = w }

// SetR sets the red color component, which is the X component.
func (v *Vector4[T]) SetR(r T) { v[0] = r }

// SetG sets the green color component, which is the Y component.
func (v *Vector4[T]) SetG(g T) { v[1] = g }

// SetB sets the blue color component, which is the Z component.
func (v *Vector4[T]) SetB(b T) { v[2] = b }

// SetA sets the alpha color component, which is the W component.
func (v *Vector4[T]) SetA(a T) { v[3] = a }

// SetS sets the S texture coordinate, which is the X component.
func (v *Vector4[T]) SetS(s T) { v[0] = s }

// SetT sets the T texture coordinate, which is the Y component.
func (v *Vector4[T]) SetT(t T) { v[1] = t }

// SetP sets the P texture coordinate, which is the Z component.
func (v *Vector4[T]) SetP(p T) { v[2] = p }

// SetQ sets the Q texture coordinate, which is the W component.
func (v *Vector4[T]) SetQ(q T) { v[3] = q }

// Set sets this vector X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v[0] = x
	v[1] = y
	v[2] = z
	v[3] = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4[T]) SetScalar(s T) {
	v[0] = s
	v[1] = s
	v[2] = s
	v[3] = s
}

// SetZero sets all of the vector components to zero.
func (v *Vector4[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector4[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v[0] = value
	case Y:
		v[1] = value
	case Z:
		v[2] = value
	case W:
		v[3] = value
	default:
		panic("vecmath.Vector4.SetDim: dim is out of range: " + dim.String())
	}
}

// Dim returns this vector component
func (v Vector4[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v[0]
	case Y:
		return v[1]
	case Z:
		return v[2]
	case W:
		return v[3]
	default:
		panic("vecmath.Vector4.Dim: dim is out of range: " + dim.String())
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4[T]) FromSlice(s []T, offset int) {
	v[0] = s[offset]
	v[1] = s[offset+1]
	v[2] = s[offset+2]
	v[3] = s[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4[T]) ToSlice(s []T, offset int) {
	s[offset] = v[0]
	s[offset+1] = v[1]
	s[offset+2] = v[2]
	s[offset+3] = v[3]
}

// Vector3 returns the X, Y and Z components as a [Vector3].
func (v Vector4[T]) Vector3() Vector3[T] {
	return Vector3[T]{v[0], v[1], v[2]}
}

// PerspDiv returns the X, Y and Z components divided by W,
// the perspective divide of homogeneous coordinates.
// It returns the X, Y and Z components unchanged if W is zero.
func (v Vector4[T]) PerspDiv() Vector3[T] {
	if v[3] == 0 {
		return v.Vector3()
	}
	return Vector3[T]{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}

// String returns the vector formatted as (x, y, z, w).
func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4[T]) SetAdd(other Vector4[T]) *Vector4[T] {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	v[3] += other[3]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4[T]) SetAddScalar(s T) *Vector4[T] {
	v[0] += s
	v[1] += s
	v[2] += s
	v[3] += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4[T]) SetSub(other Vector4[T]) *Vector4[T] {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	v[3] -= other[3]
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector4[T]) SetSubScalar(s T) *Vector4[T] {
	v[0] -= s
	v[1] -= s
	v[2] -= s
	v[3] -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4[T]) SetMul(other Vector4[T]) *Vector4[T] {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	v[3] *= other[3]
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4[T]) SetMulScalar(s T) *Vector4[T] {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector4[T]) SetDiv(other Vector4[T]) *Vector4[T] {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	v[3] /= other[3]
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector4[T]) SetDivScalar(s T) *Vector4[T] {
	v[0] /= s
	v[1] /= s
	v[2] /= s
	v[3] /= s
	return v
}

// Negate returns the vector with each component negated.
func (v Vector4[T]) Negate() Vector4[T] {
	return Vector4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// Min returns min of this vector components vs. other vector.
func (v Vector4[T]) Min(other Vector4[T]) Vector4[T] {
	return Vector4[T]{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2]), min(v[3], other[3])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector4[T]) Max(other Vector4[T]) Vector4[T] {
	return Vector4[T]{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2]), max(v[3], other[3])}
}

// Abs returns the vector with the absolute value of each component.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{abs(v[0]), abs(v[1]), abs(v[2]), abs(v[3])}
}

// IsZero returns whether all of the components are zero.
func (v Vector4[T]) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0 && v[3] == 0
}

// IsEqualTol returns whether each component of this vector is within
// the given tolerance of the corresponding component of other.
func (v Vector4[T]) IsEqualTol(other Vector4[T], tol float64) bool {
	return equalTol(v[0], other[0], tol) &&
		equalTol(v[1], other[1], tol) &&
		equalTol(v[2], other[2], tol) &&
		equalTol(v[3], other[3], tol)
}

///////////////////////////////////////////////////////////////////////
//  Vector ops

// Dot returns the dot product of this vector with the given other vector,
// computed in float64.
func (v Vector4[T]) Dot(other Vector4[T]) float64 {
	return float64(v[0])*float64(other[0]) +
		float64(v[1])*float64(other[1]) +
		float64(v[2])*float64(other[2]) +
		float64(v[3])*float64(other[3])
}

// DotF returns the dot product of this vector with the given other vector,
// computed in float32.
func (v Vector4[T]) DotF(other Vector4[T]) float32 {
	return float32(v[0])*float32(other[0]) +
		float32(v[1])*float32(other[1]) +
		float32(v[2])*float32(other[2]) +
		float32(v[3])*float32(other[3])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root. Unlike [Vector4.Length],
// it can underflow to zero or overflow to infinity.
func (v Vector4[T]) LengthSquared() float64 {
	x, y, z, w := float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])
	return x*x + y*y + z*z + w*w
}

// Length returns the length (magnitude) of this vector, computed in float64.
// It is zero only when every component is zero.
func (v Vector4[T]) Length() float64 {
	return norm(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

// LengthF returns the length (magnitude) of this vector, computed in float32.
func (v Vector4[T]) LengthF() float32 {
	x, y, z, w := float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])
	return math32.Sqrt(x*x + y*y + z*z + w*w)
}

// Normalize divides each component of this vector by its length, so that
// it has a length of 1. A vector of length zero is left unchanged.
// Integer components are truncated.
func (v *Vector4[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		return
	}
	v[0] = T(float64(v[0]) / l)
	v[1] = T(float64(v[1]) / l)
	v[2] = T(float64(v[2]) / l)
	v[3] = T(float64(v[3]) / l)
}

// Normalized returns this vector divided by its length.
// A vector of length zero is returned unchanged.
func (v Vector4[T]) Normalized() Vector4[T] {
	v.Normalize()
	return v
}

// DistanceTo returns the distance between these two vectors as points.
// The differences are taken in float64, so unsigned components do not wrap.
func (v Vector4[T]) DistanceTo(other Vector4[T]) float64 {
	return norm(
		float64(v[0])-float64(other[0]),
		float64(v[1])-float64(other[1]),
		float64(v[2])-float64(other[2]),
		float64(v[3])-float64(other[3]),
	)
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4[T]) Lerp(other Vector4[T], alpha float64) Vector4[T] {
	return Vector4[T]{
		lerp(v[0], other[0], alpha),
		lerp(v[1], other[1], alpha),
		lerp(v[2], other[2], alpha),
		lerp(v[3], other[3], alpha),
	}
}

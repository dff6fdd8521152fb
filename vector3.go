// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Vector3 is a 3D vector/point with X, Y and Z components,
// also addressable as R, G, B colors and S, T, P texture coordinates.
type Vector3[T Number] [3]T

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Number](s T) Vector3[T] {
	return Vector3[T]{s, s, s}
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2[T Number](v Vector2[T], z T) Vector3[T] {
	return Vector3[T]{v[0], v[1], z}
}

// Vector3Convert returns the given vector with its components
// converted to element type U.
func Vector3Convert[U, T Number](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// X returns the X component.
func (v Vector3[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector3[T]) Y() T { return v[1] }

// Z returns the Z component.
func (v Vector3[T]) Z() T { return v[2] }

// R returns the red color component, which is the X component.
func (v Vector3[T]) R() T { return v[0] }

// G returns the green color component, which is the Y component.
func (v Vector3[T]) G() T { return v[1] }

// B returns the blue color component, which is the Z component.
func (v Vector3[T]) B() T { return v[2] }

// S returns the S texture coordinate, which is the X component.
func (v Vector3[T]) S() T { return v[0] }

// T returns the T texture coordinate, which is the Y component.
func (v Vector3[T]) T() T { return v[1] }

// P returns the P texture coordinate, which is the Z component.
func (v Vector3[T]) P() T { return v[2] }

// SetX sets the X component.
func (v *Vector3[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector3[T]) SetY(y T) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector3[T]) SetZ(z T) { v[2] = z }

// SetR sets the red color component, which is the X component.
func (v *Vector3[T]) SetR(r T) { v[0] = r }

// SetG sets the green color component, which is the Y component.
func (v *Vector3[T]) SetG(g T) { v[1] = g }

// SetB sets the blue color component, which is the Z component.
func (v *Vector3[T]) SetB(b T) { v[2] = b }

// SetS sets the S texture coordinate, which is the X component.
func (v *Vector3[T]) SetS(s T) { v[0] = s }

// SetT sets the T texture coordinate, which is the Y component.
func (v *Vector3[T]) SetT(t T) { v[1] = t }

// SetP sets the P texture coordinate, which is the Z component.
func (v *Vector3[T]) SetP(p T) { v[2] = p }

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v[0] = x
	v[1] = y
	v[2] = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3[T]) SetScalar(s T) {
	v[0] = s
	v[1] = s
	v[2] = s
}

// SetZero sets all of the vector components to zero.
func (v *Vector3[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v[0] = value
	case Y:
		v[1] = value
	case Z:
		v[2] = value
	default:
		panic("vecmath.Vector3.SetDim: dim is out of range: " + dim.String())
	}
}

// Dim returns this vector component
func (v Vector3[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v[0]
	case Y:
		return v[1]
	case Z:
		return v[2]
	default:
		panic("vecmath.Vector3.Dim: dim is out of range: " + dim.String())
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3[T]) FromSlice(s []T, offset int) {
	v[0] = s[offset]
	v[1] = s[offset+1]
	v[2] = s[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3[T]) ToSlice(s []T, offset int) {
	s[offset] = v[0]
	s[offset+1] = v[1]
	s[offset+2] = v[2]
}

// Vector2 returns the X and Y components as a [Vector2].
func (v Vector3[T]) Vector2() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

// String returns the vector formatted as (x, y, z).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] + s, v[1] + s, v[2] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) *Vector3[T] {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3[T]) SetAddScalar(s T) *Vector3[T] {
	v[0] += s
	v[1] += s
	v[2] += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] - s, v[1] - s, v[2] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) *Vector3[T] {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3[T]) SetSubScalar(s T) *Vector3[T] {
	v[0] -= s
	v[1] -= s
	v[2] -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3[T]) SetMul(other Vector3[T]) *Vector3[T] {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) *Vector3[T] {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] / s, v[1] / s, v[2] / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector3[T]) SetDiv(other Vector3[T]) *Vector3[T] {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector3[T]) SetDivScalar(s T) *Vector3[T] {
	v[0] /= s
	v[1] /= s
	v[2] /= s
	return v
}

// Negate returns the vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v[0], -v[1], -v[2]}
}

// Min returns min of this vector components vs. other vector.
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2])}
}

// Abs returns the vector with the absolute value of each component.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{abs(v[0]), abs(v[1]), abs(v[2])}
}

// IsZero returns whether all of the components are zero.
func (v Vector3[T]) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsEqualTol returns whether each component of this vector is within
// the given tolerance of the corresponding component of other.
func (v Vector3[T]) IsEqualTol(other Vector3[T], tol float64) bool {
	return equalTol(v[0], other[0], tol) &&
		equalTol(v[1], other[1], tol) &&
		equalTol(v[2], other[2], tol)
}

///////////////////////////////////////////////////////////////////////
//  Vector ops

// Dot returns the dot product of this vector with the given other vector,
// computed in float64.
func (v Vector3[T]) Dot(other Vector3[T]) float64 {
	return float64(v[0])*float64(other[0]) +
		float64(v[1])*float64(other[1]) +
		float64(v[2])*float64(other[2])
}

// DotF returns the dot product of this vector with the given other vector,
// computed in float32.
func (v Vector3[T]) DotF(other Vector3[T]) float32 {
	return float32(v[0])*float32(other[0]) +
		float32(v[1])*float32(other[1]) +
		float32(v[2])*float32(other[2])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root. Unlike [Vector3.Length],
// it can underflow to zero or overflow to infinity.
func (v Vector3[T]) LengthSquared() float64 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	return x*x + y*y + z*z
}

// Length returns the length (magnitude) of this vector, computed in float64.
// It is zero only when every component is zero.
func (v Vector3[T]) Length() float64 {
	return norm(float64(v[0]), float64(v[1]), float64(v[2]))
}

// LengthF returns the length (magnitude) of this vector, computed in float32.
func (v Vector3[T]) LengthF() float32 {
	x, y, z := float32(v[0]), float32(v[1]), float32(v[2])
	return math32.Sqrt(x*x + y*y + z*z)
}

// Normalize divides each component of this vector by its length, so that
// it has a length of 1. A vector of length zero is left unchanged.
// Integer components are truncated.
func (v *Vector3[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		return
	}
	v[0] = T(float64(v[0]) / l)
	v[1] = T(float64(v[1]) / l)
	v[2] = T(float64(v[2]) / l)
}

// Normalized returns this vector divided by its length.
// A vector of length zero is returned unchanged.
func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

// DistanceTo returns the distance between these two vectors as points.
// The differences are taken in float64, so unsigned components do not wrap.
func (v Vector3[T]) DistanceTo(other Vector3[T]) float64 {
	return norm(float64(v[0])-float64(other[0]), float64(v[1])-float64(other[1]), float64(v[2])-float64(other[2]))
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3[T]) Lerp(other Vector3[T], alpha float64) Vector3[T] {
	return Vector3[T]{
		lerp(v[0], other[0], alpha),
		lerp(v[1], other[1], alpha),
		lerp(v[2], other[2], alpha),
	}
}

// Cross returns the cross product of this vector with other,
// following the right hand rule.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Reflect sets this vector to its reflection about the given normal:
// v - normal * 2 * v.Dot(normal). The normal is assumed to be normalized.
func (v *Vector3[T]) Reflect(normal Vector3[T]) {
	d2 := 2 * v.Dot(normal)
	v[0] = T(float64(v[0]) - float64(normal[0])*d2)
	v[1] = T(float64(v[1]) - float64(normal[1])*d2)
	v[2] = T(float64(v[2]) - float64(normal[2])*d2)
}

// Reflected returns the reflection of this vector about the given normal.
// The normal is assumed to be normalized.
func (v Vector3[T]) Reflected(normal Vector3[T]) Vector3[T] {
	v.Reflect(normal)
	return v
}

// AngleTo returns the angle between this vector and other, in radians.
// It returns zero if either vector has a length of zero.
func (v Vector3[T]) AngleTo(other Vector3[T]) float64 {
	l := v.Length() * other.Length()
	if l == 0 {
		return 0
	}
	return math.Acos(max(-1, min(1, v.Dot(other)/l)))
}

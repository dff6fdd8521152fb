// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"image"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components,
// also addressable as S and T texture coordinates.
type Vector2[T Number] [2]T

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T Number](s T) Vector2[T] {
	return Vector2[T]{s, s}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint[T Number](pt image.Point) Vector2[T] {
	return Vector2[T]{T(pt.X), T(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed[T Number](pt fixed.Point26_6) Vector2[T] {
	return Vector2[T]{T(float64(pt.X) / 64), T(float64(pt.Y) / 64)}
}

// Vector2Convert returns the given vector with its components
// converted to element type U.
func Vector2Convert[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{U(v[0]), U(v[1])}
}

// X returns the X component.
func (v Vector2[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector2[T]) Y() T { return v[1] }

// S returns the S texture coordinate, which is the X component.
func (v Vector2[T]) S() T { return v[0] }

// T returns the T texture coordinate, which is the Y component.
func (v Vector2[T]) T() T { return v[1] }

// SetX sets the X component.
func (v *Vector2[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector2[T]) SetY(y T) { v[1] = y }

// SetS sets the S texture coordinate, which is the X component.
func (v *Vector2[T]) SetS(s T) { v[0] = s }

// SetT sets the T texture coordinate, which is the Y component.
func (v *Vector2[T]) SetT(t T) { v[1] = t }

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v[0] = x
	v[1] = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2[T]) SetScalar(s T) {
	v[0] = s
	v[1] = s
}

// SetZero sets all of the vector components to zero.
func (v *Vector2[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v[0] = value
	case Y:
		v[1] = value
	default:
		panic("vecmath.Vector2.SetDim: dim is out of range: " + dim.String())
	}
}

// Dim returns this vector component
func (v Vector2[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v[0]
	case Y:
		return v[1]
	default:
		panic("vecmath.Vector2.Dim: dim is out of range: " + dim.String())
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[T]) FromSlice(s []T, offset int) {
	v[0] = s[offset]
	v[1] = s[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[T]) ToSlice(s []T, offset int) {
	s[offset] = v[0]
	s[offset+1] = v[1]
}

// ToPoint returns the vector as an [image.Point], truncating non-integer values.
func (v Vector2[T]) ToPoint() image.Point {
	return image.Point{X: int(v[0]), Y: int(v[1])}
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2[T]) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v[0]) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v[1]) * 64)),
	}
}

// String returns the vector formatted as (x, y).
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] + other[0], v[1] + other[1]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] + s, v[1] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2[T]) SetAdd(other Vector2[T]) *Vector2[T] {
	v[0] += other[0]
	v[1] += other[1]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2[T]) SetAddScalar(s T) *Vector2[T] {
	v[0] += s
	v[1] += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] - other[0], v[1] - other[1]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] - s, v[1] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2[T]) SetSub(other Vector2[T]) *Vector2[T] {
	v[0] -= other[0]
	v[1] -= other[1]
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector2[T]) SetSubScalar(s T) *Vector2[T] {
	v[0] -= s
	v[1] -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] * other[0], v[1] * other[1]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] * s, v[1] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2[T]) SetMul(other Vector2[T]) *Vector2[T] {
	v[0] *= other[0]
	v[1] *= other[1]
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2[T]) SetMulScalar(s T) *Vector2[T] {
	v[0] *= s
	v[1] *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] / other[0], v[1] / other[1]}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] / s, v[1] / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector2[T]) SetDiv(other Vector2[T]) *Vector2[T] {
	v[0] /= other[0]
	v[1] /= other[1]
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector2[T]) SetDivScalar(s T) *Vector2[T] {
	v[0] /= s
	v[1] /= s
	return v
}

// Negate returns the vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	return Vector2[T]{-v[0], -v[1]}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2[T]) Min(other Vector2[T]) Vector2[T] {
	return Vector2[T]{min(v[0], other[0]), min(v[1], other[1])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2[T]) Max(other Vector2[T]) Vector2[T] {
	return Vector2[T]{max(v[0], other[0]), max(v[1], other[1])}
}

// Abs returns the vector with the absolute value of each component.
func (v Vector2[T]) Abs() Vector2[T] {
	return Vector2[T]{abs(v[0]), abs(v[1])}
}

// IsZero returns whether all of the components are zero.
func (v Vector2[T]) IsZero() bool {
	return v[0] == 0 && v[1] == 0
}

// IsEqualTol returns whether each component of this vector is within
// the given tolerance of the corresponding component of other.
func (v Vector2[T]) IsEqualTol(other Vector2[T], tol float64) bool {
	return equalTol(v[0], other[0], tol) && equalTol(v[1], other[1], tol)
}

///////////////////////////////////////////////////////////////////////
//  Vector ops

// Dot returns the dot product of this vector with the given other vector,
// computed in float64.
func (v Vector2[T]) Dot(other Vector2[T]) float64 {
	return float64(v[0])*float64(other[0]) + float64(v[1])*float64(other[1])
}

// DotF returns the dot product of this vector with the given other vector,
// computed in float32.
func (v Vector2[T]) DotF(other Vector2[T]) float32 {
	return float32(v[0])*float32(other[0]) + float32(v[1])*float32(other[1])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root. Unlike [Vector2.Length],
// it can underflow to zero or overflow to infinity.
func (v Vector2[T]) LengthSquared() float64 {
	x, y := float64(v[0]), float64(v[1])
	return x*x + y*y
}

// Length returns the length (magnitude) of this vector, computed in float64.
// It is zero only when every component is zero.
func (v Vector2[T]) Length() float64 {
	return norm(float64(v[0]), float64(v[1]))
}

// LengthF returns the length (magnitude) of this vector, computed in float32.
func (v Vector2[T]) LengthF() float32 {
	x, y := float32(v[0]), float32(v[1])
	return math32.Sqrt(x*x + y*y)
}

// Normalize divides each component of this vector by its length, so that
// it has a length of 1. A vector of length zero is left unchanged.
// Integer components are truncated.
func (v *Vector2[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		return
	}
	v[0] = T(float64(v[0]) / l)
	v[1] = T(float64(v[1]) / l)
}

// Normalized returns this vector divided by its length.
// A vector of length zero is returned unchanged.
func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

// DistanceTo returns the distance between these two vectors as points.
// The differences are taken in float64, so unsigned components do not wrap.
func (v Vector2[T]) DistanceTo(other Vector2[T]) float64 {
	return norm(float64(v[0])-float64(other[0]), float64(v[1])-float64(other[1]))
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2[T]) Lerp(other Vector2[T], alpha float64) Vector2[T] {
	return Vector2[T]{lerp(v[0], other[0], alpha), lerp(v[1], other[1], alpha)}
}

// Reflect sets this vector to its reflection about the given normal:
// v - normal * 2 * v.Dot(normal). The normal is assumed to be normalized.
func (v *Vector2[T]) Reflect(normal Vector2[T]) {
	d2 := 2 * v.Dot(normal)
	v[0] = T(float64(v[0]) - float64(normal[0])*d2)
	v[1] = T(float64(v[1]) - float64(normal[1])*d2)
}

// Reflected returns the reflection of this vector about the given normal.
// The normal is assumed to be normalized.
func (v Vector2[T]) Reflected(normal Vector2[T]) Vector2[T] {
	v.Reflect(normal)
	return v
}

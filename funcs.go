// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Vector is implemented by all of the vector types.
// V is the vector type itself and T its element type.
type Vector[V any, T Number] interface {
	Dot(V) float64
	DotF(V) float32
	Length() float64
	Add(V) V
	Sub(V) V
	Mul(V) V
	Div(V) V
	MulScalar(T) V
	Negate() V
	Normalized() V
}

// reflector is implemented by the vector types that support reflection.
type reflector[V any] interface {
	Reflected(V) V
}

// Dot returns the dot product of the two given vectors, computed in float64.
func Dot[V interface{ Dot(V) float64 }](a, b V) float64 {
	return a.Dot(b)
}

// DotF returns the dot product of the two given vectors, computed in float32.
func DotF[V interface{ DotF(V) float32 }](a, b V) float32 {
	return a.DotF(b)
}

// Cross returns the cross product of the two given vectors.
func Cross[T Number](a, b Vector3[T]) Vector3[T] {
	return a.Cross(b)
}

// Reflect returns the reflection of v about the given normal, which
// is assumed to be normalized. It is defined for [Vector2] and [Vector3].
func Reflect[V reflector[V]](v, normal V) V {
	return v.Reflected(normal)
}

// Scale returns v with each component multiplied by the scalar s.
// It is the scalar-first form of MulScalar: Scale(s, v) == v.MulScalar(s).
func Scale[T Number, V Vector[V, T]](s T, v V) V {
	return v.MulScalar(s)
}

// Normalized returns v divided by its length, or v unchanged if
// its length is zero.
func Normalized[V interface{ Normalized() V }](v V) V {
	return v.Normalized()
}

// Cross4 returns the generalization of the cross product to four
// dimensions: the vector orthogonal to each of a, b and c, given by the
// formal determinant with a, b and c as the first three rows and the
// basis vectors as the last row. Cross4(X, Y, Z) is W, the same way that
// the three dimensional Cross(X, Y) is Z. The result is the zero vector
// if a, b and c are linearly dependent.
func Cross4[T Number](a, b, c Vector4[T]) Vector4[T] {
	return Vector4[T]{
		-det3(a[1], a[2], a[3], b[1], b[2], b[3], c[1], c[2], c[3]),
		det3(a[0], a[2], a[3], b[0], b[2], b[3], c[0], c[2], c[3]),
		-det3(a[0], a[1], a[3], b[0], b[1], b[3], c[0], c[1], c[3]),
		det3(a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]),
	}
}

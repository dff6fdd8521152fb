// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 matrix stored in row-major order, so that m[i][j]
// is the element in row i and column j. It is used both for 3D linear
// transforms and for 2D affine transforms in homogeneous coordinates.
type Matrix3[T Number] [3][3]T

// Identity3 returns a new identity [Matrix3].
func Identity3[T Number]() Matrix3[T] {
	return Matrix3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromRows returns a new [Matrix3] with the given row vectors.
func Matrix3FromRows[T Number](r0, r1, r2 Vector3[T]) Matrix3[T] {
	return Matrix3[T]{r0, r1, r2}
}

// Matrix3FromSlice returns a new [Matrix3] from the first 9 elements
// of the given slice, in row-major order.
func Matrix3FromSlice[T Number](s []T) Matrix3[T] {
	var m Matrix3[T]
	for i := range 3 {
		copy(m[i][:], s[i*3:i*3+3])
	}
	return m
}

// Matrix3FromMatrix4 returns the upper left 3x3 elements of the given [Matrix4].
func Matrix3FromMatrix4[T Number](m4 Matrix4[T]) Matrix3[T] {
	var m Matrix3[T]
	for i := range 3 {
		copy(m[i][:], m4[i][:3])
	}
	return m
}

// Row returns row i of the matrix.
func (m Matrix3[T]) Row(i int) Vector3[T] {
	return Vector3[T](m[i])
}

// Col returns column j of the matrix.
func (m Matrix3[T]) Col(j int) Vector3[T] {
	return Vector3[T]{m[0][j], m[1][j], m[2][j]}
}

// SetRow sets row i of the matrix to the given vector.
func (m *Matrix3[T]) SetRow(i int, v Vector3[T]) {
	m[i] = [3]T(v)
}

// SetCol sets column j of the matrix to the given vector.
func (m *Matrix3[T]) SetCol(j int, v Vector3[T]) {
	for i := range 3 {
		m[i][j] = v[i]
	}
}

// ToSlice copies the matrix elements to the given slice in row-major order,
// starting at offset.
func (m Matrix3[T]) ToSlice(s []T, offset int) {
	for i := range 3 {
		copy(s[offset+i*3:offset+i*3+3], m[i][:])
	}
}

// Mul returns the matrix product m * other.
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	var r Matrix3[T]
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// SetMul sets this matrix to the matrix product m * other.
func (m *Matrix3[T]) SetMul(other Matrix3[T]) {
	*m = m.Mul(other)
}

// MulVector returns the product of the matrix with the given column vector.
func (m Matrix3[T]) MulVector(v Vector3[T]) Vector3[T] {
	var r Vector3[T]
	for i := range 3 {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

// MulPoint returns the given 2D point transformed by the matrix,
// with an implicit third component of 1.
func (m Matrix3[T]) MulPoint(v Vector2[T]) Vector2[T] {
	return m.MulVector(Vector3FromVector2(v, 1)).Vector2()
}

// MulScalar returns the matrix with each element multiplied by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	for i := range 3 {
		m[i] = [3]T(m.Row(i).MulScalar(s))
	}
	return m
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	for i := range 3 {
		m[i] = [3]T(m.Row(i).Add(other.Row(i)))
	}
	return m
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	for i := range 3 {
		m[i] = [3]T(m.Row(i).Sub(other.Row(i)))
	}
	return m
}

// Transpose transposes this matrix in place.
func (m *Matrix3[T]) Transpose() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[1][2], m[2][1] = m[2][1], m[1][2]
}

// Transposed returns the transpose of this matrix.
func (m Matrix3[T]) Transposed() Matrix3[T] {
	m.Transpose()
	return m
}

///////////////////////////////////////////////////////////////////////
//  2D transforms

// Translate post-multiplies this matrix by a 2D translation by x and y,
// adding m[i][0]*x + m[i][1]*y to the last column of each row.
func (m *Matrix3[T]) Translate(x, y T) {
	for i := range 3 {
		m[i][2] += m[i][0]*x + m[i][1]*y
	}
}

// TranslateVector is [Matrix3.Translate] with the offsets in a [Vector2].
func (m *Matrix3[T]) TranslateVector(v Vector2[T]) {
	m.Translate(v[0], v[1])
}

// Translated returns a copy of this matrix translated by x and y.
func (m Matrix3[T]) Translated(x, y T) Matrix3[T] {
	m.Translate(x, y)
	return m
}

// SetTranslation sets the translation elements of the last column to
// x and y, and the bottom right element to 1.
func (m *Matrix3[T]) SetTranslation(x, y T) {
	m[0][2] = x
	m[1][2] = y
	m[2][2] = 1
}

// Translation returns the 2D translation elements of the last column.
func (m Matrix3[T]) Translation() Vector2[T] {
	return Vector2[T]{m[0][2], m[1][2]}
}

// Scale post-multiplies this matrix by a scaling matrix,
// multiplying columns 0 to 2 by x, y and z respectively.
func (m *Matrix3[T]) Scale(x, y, z T) {
	m.ScaleVector(Vector3[T]{x, y, z})
}

// ScaleVector is [Matrix3.Scale] with the factors in a [Vector3].
func (m *Matrix3[T]) ScaleVector(v Vector3[T]) {
	for i := range 3 {
		m[i] = [3]T(m.Row(i).Mul(v))
	}
}

// Scaled returns a copy of this matrix scaled by x, y and z.
func (m Matrix3[T]) Scaled(x, y, z T) Matrix3[T] {
	m.Scale(x, y, z)
	return m
}

// SetScaling sets the diagonal of this matrix to x, y and z.
func (m *Matrix3[T]) SetScaling(x, y, z T) {
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
}

///////////////////////////////////////////////////////////////////////
//  Determinant and inverse

// Determinant returns the determinant of this matrix, computed in float64.
func (m Matrix3[T]) Determinant() float64 {
	f := m.toFloat64()
	return det3(f[0][0], f[0][1], f[0][2], f[1][0], f[1][1], f[1][2], f[2][0], f[2][1], f[2][2])
}

// Inverse returns the inverse of this matrix, computed in float64 and
// converted back to T, and whether the matrix is invertible. If it is
// not, the zero matrix is returned.
func (m Matrix3[T]) Inverse() (Matrix3[T], bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3[T]{}, false
	}
	f := m.toFloat64()
	var r Matrix3[T]
	for i := range 3 {
		for j := range 3 {
			// rows and columns after i and j, cyclically, give the signed minor
			i1, i2 := (i+1)%3, (i+2)%3
			j1, j2 := (j+1)%3, (j+2)%3
			c := f[i1][j1]*f[i2][j2] - f[i1][j2]*f[i2][j1]
			r[j][i] = T(c / det)
		}
	}
	return r, true
}

func (m Matrix3[T]) toFloat64() Matrix3[float64] {
	var f Matrix3[float64]
	for i := range 3 {
		f[i] = [3]float64(Vector3Convert[float64](m.Row(i)))
	}
	return f
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m Matrix3[T]) IsIdentity() bool {
	return m == Identity3[T]()
}

// IsEqualTol returns whether each element of this matrix is within
// the given tolerance of the corresponding element of other.
func (m Matrix3[T]) IsEqualTol(other Matrix3[T], tol float64) bool {
	for i := range 3 {
		if !m.Row(i).IsEqualTol(other.Row(i), tol) {
			return false
		}
	}
	return true
}

// String returns the matrix formatted with one row per line.
func (m Matrix3[T]) String() string {
	var b strings.Builder
	for i := range 3 {
		fmt.Fprintf(&b, "[%v %v %v]\n", m[i][0], m[i][1], m[i][2])
	}
	return b.String()
}

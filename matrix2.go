// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "fmt"

// Matrix2 is a 2x2 matrix stored in row-major order, so that m[i][j]
// is the element in row i and column j.
type Matrix2[T Number] [2][2]T

// Identity2 returns a new identity [Matrix2].
func Identity2[T Number]() Matrix2[T] {
	return Matrix2[T]{{1, 0}, {0, 1}}
}

// Matrix2FromRows returns a new [Matrix2] with the given row vectors.
func Matrix2FromRows[T Number](r0, r1 Vector2[T]) Matrix2[T] {
	return Matrix2[T]{r0, r1}
}

// Row returns row i of the matrix.
func (m Matrix2[T]) Row(i int) Vector2[T] {
	return Vector2[T](m[i])
}

// Col returns column j of the matrix.
func (m Matrix2[T]) Col(j int) Vector2[T] {
	return Vector2[T]{m[0][j], m[1][j]}
}

// SetRow sets row i of the matrix to the given vector.
func (m *Matrix2[T]) SetRow(i int, v Vector2[T]) {
	m[i] = [2]T(v)
}

// SetCol sets column j of the matrix to the given vector.
func (m *Matrix2[T]) SetCol(j int, v Vector2[T]) {
	m[0][j] = v[0]
	m[1][j] = v[1]
}

// Mul returns the matrix product m * other.
func (m Matrix2[T]) Mul(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{
		{m[0][0]*other[0][0] + m[0][1]*other[1][0], m[0][0]*other[0][1] + m[0][1]*other[1][1]},
		{m[1][0]*other[0][0] + m[1][1]*other[1][0], m[1][0]*other[0][1] + m[1][1]*other[1][1]},
	}
}

// MulVector returns the product of the matrix with the given column vector.
func (m Matrix2[T]) MulVector(v Vector2[T]) Vector2[T] {
	return Vector2[T]{m[0][0]*v[0] + m[0][1]*v[1], m[1][0]*v[0] + m[1][1]*v[1]}
}

// MulScalar returns the matrix with each element multiplied by s.
func (m Matrix2[T]) MulScalar(s T) Matrix2[T] {
	return Matrix2[T]{m.Row(0).MulScalar(s), m.Row(1).MulScalar(s)}
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix2[T]) Add(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m.Row(0).Add(other.Row(0)), m.Row(1).Add(other.Row(1))}
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix2[T]) Sub(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m.Row(0).Sub(other.Row(0)), m.Row(1).Sub(other.Row(1))}
}

// Transpose transposes this matrix in place.
func (m *Matrix2[T]) Transpose() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
}

// Transposed returns the transpose of this matrix.
func (m Matrix2[T]) Transposed() Matrix2[T] {
	m.Transpose()
	return m
}

// Scale multiplies column 0 by x and column 1 by y.
func (m *Matrix2[T]) Scale(x, y T) {
	m[0][0] *= x
	m[1][0] *= x
	m[0][1] *= y
	m[1][1] *= y
}

// Scaled returns a copy of this matrix scaled by x and y.
func (m Matrix2[T]) Scaled(x, y T) Matrix2[T] {
	m.Scale(x, y)
	return m
}

// SetScaling sets the diagonal of this matrix to x and y.
func (m *Matrix2[T]) SetScaling(x, y T) {
	m[0][0] = x
	m[1][1] = y
}

// Determinant returns the determinant of this matrix, computed in float64.
func (m Matrix2[T]) Determinant() float64 {
	return float64(m[0][0])*float64(m[1][1]) - float64(m[0][1])*float64(m[1][0])
}

// Inverse returns the inverse of this matrix, computed in float64 and
// converted back to T, and whether the matrix is invertible. If it is
// not, the zero matrix is returned.
func (m Matrix2[T]) Inverse() (Matrix2[T], bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2[T]{}, false
	}
	return Matrix2[T]{
		{T(float64(m[1][1]) / det), T(-float64(m[0][1]) / det)},
		{T(-float64(m[1][0]) / det), T(float64(m[0][0]) / det)},
	}, true
}

// IsEqualTol returns whether each element of this matrix is within
// the given tolerance of the corresponding element of other.
func (m Matrix2[T]) IsEqualTol(other Matrix2[T], tol float64) bool {
	return m.Row(0).IsEqualTol(other.Row(0), tol) && m.Row(1).IsEqualTol(other.Row(1), tol)
}

func (m Matrix2[T]) String() string {
	return fmt.Sprintf("[%v %v]\n[%v %v]\n", m[0][0], m[0][1], m[1][0], m[1][1])
}

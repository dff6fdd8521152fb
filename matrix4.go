// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix stored in row-major order, so that m[i][j]
// is the element in row i and column j. The zero value is the zero matrix;
// use [Identity4] for the identity matrix.
type Matrix4[T Number] [4][4]T

// Identity4 returns a new identity [Matrix4].
func Identity4[T Number]() Matrix4[T] {
	return Matrix4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Matrix4FromRows returns a new [Matrix4] with the given row vectors.
func Matrix4FromRows[T Number](r0, r1, r2, r3 Vector4[T]) Matrix4[T] {
	return Matrix4[T]{r0, r1, r2, r3}
}

// Matrix4FromSlice returns a new [Matrix4] from the first 16 elements
// of the given slice, in row-major order.
func Matrix4FromSlice[T Number](s []T) Matrix4[T] {
	var m Matrix4[T]
	for i := range 4 {
		copy(m[i][:], s[i*4:i*4+4])
	}
	return m
}

// Matrix4FromMatrix3 returns the identity [Matrix4] with its upper left
// 3x3 elements replaced by those of the given [Matrix3].
func Matrix4FromMatrix3[T Number](m3 Matrix3[T]) Matrix4[T] {
	m := Identity4[T]()
	m.SetFromMatrix3(m3)
	return m
}

// Row returns row i of the matrix.
func (m Matrix4[T]) Row(i int) Vector4[T] {
	return Vector4[T](m[i])
}

// Col returns column j of the matrix.
func (m Matrix4[T]) Col(j int) Vector4[T] {
	return Vector4[T]{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// SetRow sets row i of the matrix to the given vector.
func (m *Matrix4[T]) SetRow(i int, v Vector4[T]) {
	m[i] = [4]T(v)
}

// SetCol sets column j of the matrix to the given vector.
func (m *Matrix4[T]) SetCol(j int, v Vector4[T]) {
	for i := range 4 {
		m[i][j] = v[i]
	}
}

// SetFromMatrix3 replaces the upper left 3x3 elements of this matrix with
// those of the given [Matrix3], leaving the last row and column unchanged.
func (m *Matrix4[T]) SetFromMatrix3(m3 Matrix3[T]) {
	for i := range 3 {
		copy(m[i][:3], m3[i][:])
	}
}

// ToSlice copies the matrix elements to the given slice in row-major order,
// starting at offset.
func (m Matrix4[T]) ToSlice(s []T, offset int) {
	for i := range 4 {
		copy(s[offset+i*4:offset+i*4+4], m[i][:])
	}
}

// Mul returns the matrix product m * other.
func (m Matrix4[T]) Mul(other Matrix4[T]) Matrix4[T] {
	var r Matrix4[T]
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j] + m[i][3]*other[3][j]
		}
	}
	return r
}

// SetMul sets this matrix to the matrix product m * other.
func (m *Matrix4[T]) SetMul(other Matrix4[T]) {
	*m = m.Mul(other)
}

// MulVector returns the product of the matrix with the given column vector.
func (m Matrix4[T]) MulVector(v Vector4[T]) Vector4[T] {
	var r Vector4[T]
	for i := range 4 {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return r
}

// MulPoint returns the given point transformed by the matrix,
// with an implicit W component of 1 and no perspective divide.
func (m Matrix4[T]) MulPoint(v Vector3[T]) Vector3[T] {
	return m.MulVector(Vector4FromVector3(v, 1)).Vector3()
}

// MulScalar returns the matrix with each element multiplied by s.
func (m Matrix4[T]) MulScalar(s T) Matrix4[T] {
	for i := range 4 {
		m[i] = [4]T(m.Row(i).MulScalar(s))
	}
	return m
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix4[T]) Add(other Matrix4[T]) Matrix4[T] {
	for i := range 4 {
		m[i] = [4]T(m.Row(i).Add(other.Row(i)))
	}
	return m
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix4[T]) Sub(other Matrix4[T]) Matrix4[T] {
	for i := range 4 {
		m[i] = [4]T(m.Row(i).Sub(other.Row(i)))
	}
	return m
}

// Transpose transposes this matrix in place.
func (m *Matrix4[T]) Transpose() {
	for i := range 4 {
		for j := i + 1; j < 4; j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

// Transposed returns the transpose of this matrix.
func (m Matrix4[T]) Transposed() Matrix4[T] {
	m.Transpose()
	return m
}

///////////////////////////////////////////////////////////////////////
//  Transforms

// Translate post-multiplies this matrix by a translation by x, y and z,
// adding m[i][0]*x + m[i][1]*y + m[i][2]*z to the last column of each row.
func (m *Matrix4[T]) Translate(x, y, z T) {
	for i := range 4 {
		m[i][3] += m[i][0]*x + m[i][1]*y + m[i][2]*z
	}
}

// TranslateVector is [Matrix4.Translate] with the offsets in a [Vector3].
func (m *Matrix4[T]) TranslateVector(v Vector3[T]) {
	m.Translate(v[0], v[1], v[2])
}

// Translated returns a copy of this matrix translated by x, y and z.
// See [Matrix4.Translate].
func (m Matrix4[T]) Translated(x, y, z T) Matrix4[T] {
	m.Translate(x, y, z)
	return m
}

// TranslatedVector returns a copy of this matrix translated by v.
func (m Matrix4[T]) TranslatedVector(v Vector3[T]) Matrix4[T] {
	m.TranslateVector(v)
	return m
}

// SetTranslation sets the translation elements of the last column to
// x, y and z, and the bottom right element to 1.
func (m *Matrix4[T]) SetTranslation(x, y, z T) {
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	m[3][3] = 1
}

// SetTranslationVector is [Matrix4.SetTranslation] with a [Vector3].
func (m *Matrix4[T]) SetTranslationVector(v Vector3[T]) {
	m.SetTranslation(v[0], v[1], v[2])
}

// Translation returns the translation elements of the last column.
func (m Matrix4[T]) Translation() Vector3[T] {
	return Vector3[T]{m[0][3], m[1][3], m[2][3]}
}

// Scale post-multiplies this matrix by a scaling matrix,
// multiplying columns 0 to 3 by x, y, z and w respectively.
func (m *Matrix4[T]) Scale(x, y, z, w T) {
	m.ScaleVector(Vector4[T]{x, y, z, w})
}

// ScaleVector is [Matrix4.Scale] with the factors in a [Vector4].
func (m *Matrix4[T]) ScaleVector(v Vector4[T]) {
	for i := range 4 {
		m[i] = [4]T(m.Row(i).Mul(v))
	}
}

// Scaled returns a copy of this matrix scaled by x, y, z and w.
// See [Matrix4.Scale].
func (m Matrix4[T]) Scaled(x, y, z, w T) Matrix4[T] {
	m.Scale(x, y, z, w)
	return m
}

// ScaledVector returns a copy of this matrix scaled by v.
func (m Matrix4[T]) ScaledVector(v Vector4[T]) Matrix4[T] {
	m.ScaleVector(v)
	return m
}

// SetScaling sets the diagonal of this matrix to x, y, z and w.
func (m *Matrix4[T]) SetScaling(x, y, z, w T) {
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	m[3][3] = w
}

// SetScalingVector is [Matrix4.SetScaling] with a [Vector4].
func (m *Matrix4[T]) SetScalingVector(v Vector4[T]) {
	m.SetScaling(v[0], v[1], v[2], v[3])
}

///////////////////////////////////////////////////////////////////////
//  Determinant and inverse

// Determinant returns the determinant of this matrix, computed in float64.
func (m Matrix4[T]) Determinant() float64 {
	f := m.toFloat64()
	var d float64
	for j := range 4 {
		d += f[0][j] * f.cofactor(0, j)
	}
	return d
}

// Inverse returns the inverse of this matrix, computed in float64 and
// converted back to T, and whether the matrix is invertible. If it is
// not, the zero matrix is returned.
func (m Matrix4[T]) Inverse() (Matrix4[T], bool) {
	f := m.toFloat64()
	det := f.Determinant()
	if det == 0 {
		return Matrix4[T]{}, false
	}
	var r Matrix4[T]
	for i := range 4 {
		for j := range 4 {
			// adjugate is the transposed cofactor matrix
			r[j][i] = T(f.cofactor(i, j) / det)
		}
	}
	return r, true
}

// cofactor returns the signed minor of element (i, j).
func (m Matrix4[T]) cofactor(i, j int) float64 {
	var s [9]float64
	n := 0
	for r := range 4 {
		if r == i {
			continue
		}
		for c := range 4 {
			if c == j {
				continue
			}
			s[n] = float64(m[r][c])
			n++
		}
	}
	d := det3(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
	if (i+j)%2 == 1 {
		return -d
	}
	return d
}

func (m Matrix4[T]) toFloat64() Matrix4[float64] {
	var f Matrix4[float64]
	for i := range 4 {
		f[i] = [4]float64(Vector4Convert[float64](m.Row(i)))
	}
	return f
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m Matrix4[T]) IsIdentity() bool {
	return m == Identity4[T]()
}

// IsEqualTol returns whether each element of this matrix is within
// the given tolerance of the corresponding element of other.
func (m Matrix4[T]) IsEqualTol(other Matrix4[T], tol float64) bool {
	for i := range 4 {
		if !m.Row(i).IsEqualTol(other.Row(i), tol) {
			return false
		}
	}
	return true
}

// String returns the matrix formatted with one row per line.
func (m Matrix4[T]) String() string {
	var b strings.Builder
	for i := range 4 {
		fmt.Fprintf(&b, "[%v %v %v %v]\n", m[i][0], m[i][1], m[i][2], m[i][3])
	}
	return b.String()
}

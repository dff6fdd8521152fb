// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"testing"

	"cogentcore.org/vecmath/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrices() (m1, m2 Matrix4f) {
	m1 = Matrix4f{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	m2 = Matrix4f{
		{16, 15, 14, 13},
		{12, 11, 10, 9},
		{8, 7, 6, 5},
		{4, 3, 2, 1},
	}
	return
}

func TestMatrix4Translate(t *testing.T) {
	m1, _ := testMatrices()
	exp := Matrix4f{
		{1, 2, 3, 10},
		{5, 6, 7, 26},
		{9, 10, 11, 42},
		{13, 14, 15, 58},
	}
	assert.Equal(t, exp, m1.Translated(1, 1, 1))
	assert.Equal(t, exp, m1.TranslatedVector(Vec3[float32](1, 1, 1)))

	m := m1
	m.Translate(1, 1, 1)
	assert.Equal(t, exp, m)
	m = m1
	m.TranslateVector(Vec3[float32](1, 1, 1))
	assert.Equal(t, exp, m)

	m = Identity4[float32]()
	m.Translate(1, 2, 3)
	assert.Equal(t, Vector3f{1, 2, 3}, m.Translation())
	assert.Equal(t, Vector3f{2, 4, 6}, m.MulPoint(Vec3[float32](1, 2, 3)))
}

func TestMatrix4SetTranslation(t *testing.T) {
	m1, _ := testMatrices()
	exp := Matrix4f{
		{1, 2, 3, 1},
		{5, 6, 7, 1},
		{9, 10, 11, 1},
		{13, 14, 15, 1},
	}
	m := m1
	m.SetTranslation(1, 1, 1)
	assert.Equal(t, exp, m)
	m = m1
	m.SetTranslationVector(Vec3[float32](1, 1, 1))
	assert.Equal(t, exp, m)
}

func TestMatrix4Scale(t *testing.T) {
	m1, _ := testMatrices()
	exp := Matrix4f{
		{2, 4, 6, 8},
		{10, 12, 14, 16},
		{18, 20, 22, 24},
		{26, 28, 30, 32},
	}
	assert.Equal(t, exp, m1.Scaled(2, 2, 2, 2))
	assert.Equal(t, exp, m1.ScaledVector(Vector4Scalar[float32](2)))
	m := m1
	m.Scale(2, 2, 2, 2)
	assert.Equal(t, exp, m)

	m = Identity4[float32]()
	m.Scale(1, 2, 3, 4)
	assert.Equal(t, Vector4f{1, 2, 3, 4}, Vector4f{m[0][0], m[1][1], m[2][2], m[3][3]})
	assert.Equal(t, Vector4f{1, 4, 9, 16}, m.MulVector(Vec4[float32](1, 2, 3, 4)))

	exp = Matrix4f{
		{2, 2, 3, 4},
		{5, 2, 7, 8},
		{9, 10, 2, 12},
		{13, 14, 15, 2},
	}
	m = m1
	m.SetScaling(2, 2, 2, 2)
	assert.Equal(t, exp, m)
	m = m1
	m.SetScalingVector(Vector4Scalar[float32](2))
	assert.Equal(t, exp, m)
}

func TestMatrix4Transpose(t *testing.T) {
	m1, _ := testMatrices()
	exp := Matrix4f{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	assert.Equal(t, exp, m1.Transposed())
	m1.Transpose()
	assert.Equal(t, exp, m1)
}

func TestMatrix4FromMatrix3(t *testing.T) {
	m1, _ := testMatrices()
	m1.SetFromMatrix3(Identity3[float32]())
	exp := Matrix4f{
		{1, 0, 0, 4},
		{0, 1, 0, 8},
		{0, 0, 1, 12},
		{13, 14, 15, 16},
	}
	assert.Equal(t, exp, m1)
	assert.Equal(t, Identity4[float32](), Matrix4FromMatrix3(Identity3[float32]()))
	assert.Equal(t, Identity3[float32](), Matrix3FromMatrix4(exp))
}

func TestMatrix4Mul(t *testing.T) {
	m1, m2 := testMatrices()
	exp := Matrix4f{
		{80, 70, 60, 50},
		{240, 214, 188, 162},
		{400, 358, 316, 274},
		{560, 502, 444, 386},
	}
	assert.Equal(t, exp, m1.Mul(m2))
	assert.Equal(t, m1, m1.Mul(Identity4[float32]()))
	assert.Equal(t, m1, Identity4[float32]().Mul(m1))
	m1.SetMul(m2)
	assert.Equal(t, exp, m1)
}

func TestMatrix4Equal(t *testing.T) {
	var m, exp Matrix4f
	assert.True(t, m == exp)
	exp.SetRow(0, Vec4[float32](1, 2, 3, 4))
	assert.True(t, m != exp)
	assert.False(t, m.IsEqualTol(exp, 1e-6))
	assert.True(t, exp.IsEqualTol(exp.Add(Matrix4f{{1e-7}}), 1e-6))
	assert.True(t, Identity4[float64]().IsIdentity())
	assert.False(t, exp.IsIdentity())
}

func TestMatrix4RowCol(t *testing.T) {
	m1, _ := testMatrices()
	assert.Equal(t, Vector4f{5, 6, 7, 8}, m1.Row(1))
	assert.Equal(t, Vector4f{3, 7, 11, 15}, m1.Col(2))

	m1.SetCol(0, Vec4[float32](-1, -2, -3, -4))
	assert.Equal(t, Vector4f{-1, 2, 3, 4}, m1.Row(0))
	m1.SetRow(3, Vector4Scalar[float32](0))
	assert.Equal(t, Vector4f{-3, 11, 0, 12}, Vector4f{m1[2][0], m1[2][2], m1[3][3], m1[2][3]})

	s := make([]float32, 17)
	m1.ToSlice(s, 1)
	assert.Equal(t, m1, Matrix4FromSlice(s[1:]))
	assert.Equal(t, Matrix4FromRows(m1.Row(0), m1.Row(1), m1.Row(2), m1.Row(3)), m1)
}

func TestMatrix4Arithmetic(t *testing.T) {
	m1, m2 := testMatrices()
	assert.Equal(t, Matrix4f{{17, 17, 17, 17}, {17, 17, 17, 17}, {17, 17, 17, 17}, {17, 17, 17, 17}}, m1.Add(m2))
	assert.Equal(t, m1, m1.Add(m2).Sub(m2))
	assert.Equal(t, m1.Add(m1), m1.MulScalar(2))
}

func TestMatrix4Inverse(t *testing.T) {
	m1, _ := testMatrices()
	assert.Equal(t, 0.0, m1.Determinant())
	inv, ok := m1.Inverse()
	assert.False(t, ok)
	assert.Equal(t, Matrix4f{}, inv)

	m := Matrix4d{
		{2, 0, 0, 1},
		{0, 3, 0, 2},
		{1, 0, 4, 3},
		{0, 0, 0, 1},
	}
	tolassert.EqualTol(t, 24, m.Determinant(), standardTol)
	inv4, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv4).IsEqualTol(Identity4[float64](), standardTol), m.Mul(inv4).String())
	assert.True(t, inv4.Mul(m).IsEqualTol(Identity4[float64](), standardTol))
	got := make([]float64, 16)
	inv4.ToSlice(got, 0)
	tolassert.EqualTolSlice(t, []float64{
		0.5, 0, 0, -0.5,
		0, 1.0 / 3, 0, -2.0 / 3,
		-0.125, 0, 0.25, -0.625,
		0, 0, 0, 1,
	}, got, standardTol)

	assert.Equal(t, 1.0, Identity4[int]().Determinant())
	tolassert.EqualTol(t, 24, Identity4[float64]().Scaled(1, 2, 3, 4).Determinant(), standardTol)
}

func TestMatrix3(t *testing.T) {
	m := Matrix3d{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	}
	assert.Equal(t, Vector3d{2, 5, 8}, m.Col(1))
	assert.Equal(t, Vector3d{4, 5, 6}, m.Row(1))
	assert.Equal(t, Matrix3d{{1, 4, 7}, {2, 5, 8}, {3, 6, 10}}, m.Transposed())
	assert.Equal(t, m, m.Mul(Identity3[float64]()))
	assert.Equal(t, Vector3d{14, 32, 53}, m.MulVector(Vec3(1.0, 2, 3)))

	tolassert.EqualTol(t, -3, m.Determinant(), standardTol)
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).IsEqualTol(Identity3[float64](), 1e-9), m.Mul(inv).String())

	_, ok = Matrix3d{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverse()
	assert.False(t, ok)

	m.SetRow(0, Vec3(0.0, 0, 0))
	m.SetCol(2, Vec3(9.0, 9, 9))
	assert.Equal(t, Matrix3d{{0, 0, 9}, {4, 5, 9}, {7, 8, 9}}, m)

	s := make([]float64, 9)
	m.ToSlice(s, 0)
	assert.Equal(t, m, Matrix3FromSlice(s))
	assert.Equal(t, m, Matrix3FromRows(m.Row(0), m.Row(1), m.Row(2)))
	assert.Equal(t, m.Add(m), m.MulScalar(2))
	assert.Equal(t, Matrix3d{}, m.Sub(m))
}

func TestMatrix3Transform2D(t *testing.T) {
	m := Identity3[float32]()
	m.Translate(2, 3)
	assert.Equal(t, Vector2f{2, 3}, m.Translation())
	assert.Equal(t, Vector2f{3, 5}, m.MulPoint(Vec2[float32](1, 2)))

	m.Scale(2, 2, 1)
	assert.Equal(t, Vector2f{4, 7}, m.MulPoint(Vec2[float32](1, 2)))
	assert.Equal(t, m, Identity3[float32]().Translated(2, 3).Scaled(2, 2, 1))

	var tv Matrix3f
	tv.SetTranslation(5, 6)
	tv.SetScaling(1, 1, 1)
	assert.Equal(t, Vector2f{6, 8}, tv.MulPoint(Vec2[float32](1, 2)))

	m = Identity3[float32]()
	m.TranslateVector(Vec2[float32](1, 1))
	m.SetMul(Identity3[float32]().Scaled(3, 3, 1))
	assert.Equal(t, Vector2f{4, 4}, m.MulPoint(Vec2[float32](1, 1)))
	assert.True(t, Identity3[int]().IsIdentity())
}

func TestMatrix2(t *testing.T) {
	m := Matrix2d{{1, 2}, {3, 4}}
	assert.Equal(t, Matrix2d{{1, 3}, {2, 4}}, m.Transposed())
	assert.Equal(t, Matrix2d{{7, 10}, {15, 22}}, m.Mul(m))
	assert.Equal(t, Vector2d{5, 11}, m.MulVector(Vec2(1.0, 2)))
	assert.Equal(t, -2.0, m.Determinant())
	assert.Equal(t, Matrix2d{{2, 6}, {6, 12}}, m.Scaled(2, 3))

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).IsEqualTol(Identity2[float64](), standardTol))
	_, ok = Matrix2d{{1, 2}, {2, 4}}.Inverse()
	assert.False(t, ok)

	assert.Equal(t, Vector2d{2, 4}, m.Col(1))
	assert.Equal(t, Vector2d{3, 4}, m.Row(1))
	m.SetCol(0, Vec2(0.0, 0))
	m.SetRow(1, Vec2(5.0, 6))
	assert.Equal(t, Matrix2FromRows(Vec2(0.0, 2), Vec2(5.0, 6)), m)
	m.SetScaling(1, 1)
	assert.Equal(t, Matrix2d{{1, 2}, {5, 1}}, m)
	assert.Equal(t, m.Add(m), m.MulScalar(2))
	assert.Equal(t, Matrix2d{}, m.Sub(m))
	assert.Equal(t, "[1 2]\n[5 1]\n", m.String())
}

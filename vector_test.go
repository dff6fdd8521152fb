// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"image"
	"math"
	"testing"

	"cogentcore.org/vecmath/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

const standardTol = 1.0e-12

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2i{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2f{20, 20}, Vector2Scalar[float32](20))
	assert.Equal(t, Vector2i{15, -5}, Vector2FromPoint[int](image.Pt(15, -5)))
	assert.Equal(t, Vector2d{8, 3}, Vector2FromFixed[float64](fixed.P(8, 3)))
	assert.Equal(t, fixed.P(8, 3), Vector2d{8, 3}.ToFixed())
	assert.Equal(t, image.Pt(1, -2), Vector2d{1.7, -2.2}.ToPoint())
	assert.Equal(t, Vector2i{1, -2}, Vector2Convert[int](Vector2d{1.7, -2.2}))

	v := Vector2f{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2f{-1, 7}, v)
	assert.Equal(t, float32(-1), v.X())
	assert.Equal(t, float32(7), v.Y())
	assert.Equal(t, v.X(), v.S())
	assert.Equal(t, v.Y(), v.T())

	v.SetScalar(8.12)
	assert.Equal(t, Vector2f{8.12, 8.12}, v)

	v.SetS(3)
	v.SetT(4)
	assert.Equal(t, Vector2f{3, 4}, v)
	v.SetX(5)
	v.SetY(6)
	assert.Equal(t, Vector2f{5, 6}, v)

	v.SetZero()
	assert.True(t, v.IsZero())

	assert.Equal(t, "(1, 2)", Vec2(1, 2).String())
}

func TestVector3(t *testing.T) {
	v := Vec3(1.0, 2, 3)
	assert.Equal(t, Vector3d{1, 2, 3}, v)
	assert.Equal(t, Vector3d{1, 2, 3}, Vector3FromVector2(Vec2(1.0, 2), 3))
	assert.Equal(t, Vector2d{1, 2}, v.Vector2())
	assert.Equal(t, Vector3i{4, 4, 4}, Vector3Scalar(4))

	assert.Equal(t, v.X(), v.R())
	assert.Equal(t, v.Y(), v.G())
	assert.Equal(t, v.Z(), v.B())
	assert.Equal(t, v.X(), v.S())
	assert.Equal(t, v.Y(), v.T())
	assert.Equal(t, v.Z(), v.P())

	v.SetR(7)
	v.SetG(8)
	v.SetB(9)
	assert.Equal(t, Vector3d{7, 8, 9}, v)
	v.SetP(1)
	v.SetZ(2)
	assert.Equal(t, 2.0, v[2])

	assert.Equal(t, "(1, 2, 3)", Vec3(1, 2, 3).String())
}

func TestVector4(t *testing.T) {
	v := Vec4[float32](0.1, 0.2, 0.3, 1)
	assert.Equal(t, float32(0.1), v.R())
	assert.Equal(t, float32(0.2), v.G())
	assert.Equal(t, float32(0.3), v.B())
	assert.Equal(t, float32(1), v.A())
	assert.Equal(t, v.W(), v.Q())
	assert.Equal(t, v.Z(), v.P())

	v.SetA(0.5)
	v.SetQ(0.25)
	assert.Equal(t, float32(0.25), v.W())

	assert.Equal(t, Vector4d{1, 2, 3, 1}, Vector4FromVector3(Vec3(1.0, 2, 3), 1))
	assert.Equal(t, Vector3d{1, 2, 3}, Vec4(1.0, 2, 3, 4).Vector3())
	assert.Equal(t, Vector3d{1, 2, 3}, Vec4(2.0, 4, 6, 2).PerspDiv())
	assert.Equal(t, Vector3d{2, 4, 6}, Vec4(2.0, 4, 6, 0).PerspDiv())
	assert.Equal(t, "(1, 2, 3, 4)", Vec4(1, 2, 3, 4).String())
}

func TestDims(t *testing.T) {
	v2 := Vec2(1, 2)
	v3 := Vec3(1, 2, 3)
	v4 := Vec4(1, 2, 3, 4)
	for d := X; d < DimsN; d++ {
		assert.Equal(t, int(d)+1, v4.Dim(d))
		v4.SetDim(d, 10*int(d))
		assert.Equal(t, 10*int(d), v4[d])
	}
	assert.Equal(t, 3, v3.Dim(Z))
	assert.Equal(t, 2, v2.Dim(Y))
	assert.Equal(t, Y, OtherDim(X))
	assert.Equal(t, X, OtherDim(Y))
	assert.Equal(t, "Z", Z.String())

	assert.Panics(t, func() { v2.Dim(Z) })
	assert.Panics(t, func() { v2.SetDim(W, 1) })
	assert.Panics(t, func() { v3.Dim(W) })
	assert.Panics(t, func() { v4.SetDim(DimsN, 1) })
}

func TestIndexOutOfRange(t *testing.T) {
	v := Vec3(1, 2, 3)
	i := 3
	assert.Panics(t, func() { _ = v[i] })
	assert.Panics(t, func() { v.FromSlice([]int{1, 2}, 0) })
	assert.Panics(t, func() { v.ToSlice(make([]int, 3), 1) })
}

func TestSlice(t *testing.T) {
	s := []float32{9, 1, 2, 3, 4}
	var v Vector4f
	v.FromSlice(s, 1)
	assert.Equal(t, Vector4f{1, 2, 3, 4}, v)

	out := make([]float32, 4)
	Vec3[float32](5, 6, 7).ToSlice(out, 1)
	assert.Equal(t, []float32{0, 5, 6, 7}, out)

	var v2 Vector2i
	v2.FromSlice([]int{3, 4}, 0)
	assert.Equal(t, Vector2i{3, 4}, v2)
}

func testIdentities[T Number](t *testing.T) {
	v2 := Vec2[T](1, 2)
	v3 := Vec3[T](1, 2, 3)
	v4 := Vec4[T](1, 2, 3, 4)

	assert.True(t, v2.Add(v2.Negate()).IsZero())
	assert.True(t, v3.Add(v3.Negate()).IsZero())
	assert.True(t, v4.Add(v4.Negate()).IsZero())

	assert.Equal(t, v2, v2.MulScalar(1))
	assert.Equal(t, v3, v3.MulScalar(1))
	assert.Equal(t, v4, v4.MulScalar(1))

	assert.Equal(t, Vector2Scalar[T](1), v2.Div(v2))
	assert.Equal(t, Vector3Scalar[T](1), v3.Div(v3))
	assert.Equal(t, Vector4Scalar[T](1), v4.Div(v4))

	assert.Equal(t, v3.MulScalar(2), Scale(T(2), v3))
	assert.Equal(t, v3.Add(v3), v3.MulScalar(2))
	assert.Equal(t, v3, v3.AddScalar(2).SubScalar(2))
	assert.Equal(t, v4, v4.MulScalar(2).DivScalar(2))
	assert.Equal(t, Vector3[T]{1, 4, 9}, v3.Mul(v3))
	assert.Equal(t, Vector3[T]{}, v3.Sub(v3))

	assert.Equal(t, float64(14), v3.Dot(v3))
	assert.Equal(t, float64(14), v3.LengthSquared())
	assert.Equal(t, math.Sqrt(30), v4.Length())
	assert.Equal(t, float64(0), Vector4[T]{}.Length())
}

func TestIdentities(t *testing.T) {
	t.Run("int", testIdentities[int])
	t.Run("int8", testIdentities[int8])
	t.Run("int16", testIdentities[int16])
	t.Run("int32", testIdentities[int32])
	t.Run("int64", testIdentities[int64])
	t.Run("uint", testIdentities[uint])
	t.Run("uint8", testIdentities[uint8])
	t.Run("uint16", testIdentities[uint16])
	t.Run("uint32", testIdentities[uint32])
	t.Run("uint64", testIdentities[uint64])
	t.Run("float32", testIdentities[float32])
	t.Run("float64", testIdentities[float64])
}

func TestSetOps(t *testing.T) {
	v := Vec3(1, 2, 3)
	v.SetAdd(Vec3(1, 1, 1)).SetMulScalar(2)
	assert.Equal(t, Vector3i{4, 6, 8}, v)
	v.SetSub(Vec3(4, 6, 8))
	assert.True(t, v.IsZero())
	v.SetAddScalar(6).SetDiv(Vec3(1, 2, 3))
	assert.Equal(t, Vector3i{6, 3, 2}, v)
	v.SetMul(Vec3(2, 2, 2)).SetSubScalar(1).SetDivScalar(2)
	assert.Equal(t, Vector3i{5, 2, 1}, v)

	w := Vec2(1.0, 2)
	w.SetMul(Vec2(3.0, 4)).SetAddScalar(1)
	assert.Equal(t, Vector2d{4, 9}, w)

	u := Vec4[uint8](250, 0, 1, 2)
	u.SetAddScalar(10)
	assert.Equal(t, Vector4u8{4, 10, 11, 12}, u)
}

func TestMinMaxAbs(t *testing.T) {
	a := Vec3(1, -5, 3)
	b := Vec3(-2, 4, 3)
	assert.Equal(t, Vector3i{-2, -5, 3}, a.Min(b))
	assert.Equal(t, Vector3i{1, 4, 3}, a.Max(b))
	assert.Equal(t, Vector3i{1, 5, 3}, a.Abs())
	assert.Equal(t, Vector2d{1.5, 2}, Vec2(-1.5, 2).Abs())
	assert.Equal(t, Vector4i{1, 2, 3, 4}, Vec4(-1, 2, -3, 4).Abs())
}

func TestLength(t *testing.T) {
	v := Vector3d{
		10.677350318091823091823,
		20.277350318812388123222,
		30.977350318999999999999,
	}
	tolassert.EqualTol(t, 38.532752024130666, v.Length(), standardTol)

	for _, v := range []Vector3d{{0, 0, 0}, {1, 0, 0}, {-3, 4, 0}, {1e-9, 0, 0}, {1e-200, 0, 0}, {0, -1e-170, 1e-180}} {
		l := v.Length()
		assert.GreaterOrEqual(t, l, 0.0)
		assert.Equal(t, v.IsZero(), l == 0)
	}

	assert.Equal(t, float32(5), Vec3[float32](3, 0, 4).LengthF())
	assert.Equal(t, float32(5), Vec2(3, 4).LengthF())
	assert.Equal(t, float32(5), Vec4(0, 3, 0, 4).LengthF())
	assert.Equal(t, 5.0, Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, 5.0, Vec4(1, 1, 1, 1).DistanceTo(Vec4(1, 4, 5, 1)))

	a8, b8 := Vec2[uint8](0, 0), Vec2[uint8](3, 4)
	assert.Equal(t, 5.0, a8.DistanceTo(b8))
	assert.Equal(t, 5.0, b8.DistanceTo(a8))
	au, bu := Vec3[uint](1, 1, 1), Vec3[uint](2, 1, 1)
	assert.Equal(t, 1.0, au.DistanceTo(bu))
	assert.Equal(t, 1.0, bu.DistanceTo(au))
	a4, b4 := Vec4[uint16](0, 0, 0, 7), Vec4[uint16](0, 3, 4, 7)
	assert.Equal(t, b4.DistanceTo(a4), a4.DistanceTo(b4))
	assert.Equal(t, 5.0, a4.DistanceTo(b4))

	tiny := Vector3d{1e-200, 0, 0}
	assert.False(t, tiny.IsZero())
	assert.InEpsilon(t, 1e-200, tiny.Length(), 1e-12)
	assert.InEpsilon(t, 1e-200*math.Sqrt2, Vector2d{1e-200, -1e-200}.Length(), 1e-12)
	assert.InEpsilon(t, 2e-200, Vector4d{0, 0, 0, 2e-200}.Length(), 1e-12)
	assert.InEpsilon(t, 1e200*math.Sqrt2, Vector3d{1e200, 1e200, 0}.Length(), 1e-12)
	assert.True(t, math.IsInf(Vector3d{math.Inf(-1), 0, 1}.Length(), 1))
	assert.InEpsilon(t, 5e-200, Vector2d{0, 0}.DistanceTo(Vector2d{3e-200, 4e-200}), 1e-12)
	n := tiny.Normalized()
	assert.Equal(t, Vector3d{1, 0, 0}, n)
}

func TestNormalize(t *testing.T) {
	v := Vector3d{30, 50, 100}
	v.Normalize()
	tolassert.EqualTol(t, 1.0, v.Length(), standardTol)

	v.Normalize()
	tolassert.EqualTol(t, 1.0, v.Length(), standardTol)

	z := Vector2f{0, 0}
	assert.Equal(t, Vector2f{0, 0}, z.Normalized())
	z.Normalize()
	assert.False(t, math.IsNaN(float64(z[0])))
	assert.Equal(t, Vector4d{}, Vector4d{}.Normalized())

	tolassert.EqualTol(t, 1.0, Vec4(1.0, 2, 3, 4).Normalized().Length(), standardTol)
	tolassert.EqualTol(t, float32(1), Vec2[float32](3, 4).Normalized().LengthF(), 1e-6)
	tolassert.Equal(t, 0.6, Vec2(3.0, 4).Normalized().X())

	// integer components are truncated
	assert.Equal(t, Vector3i{1, 0, 0}, Vec3(5, 0, 0).Normalized())
	assert.Equal(t, Vector3i{0, 0, 0}, Vec3(3, 0, 4).Normalized())
}

func TestNumericErrors(t *testing.T) {
	assert.Panics(t, func() { Vec2(1, 2).DivScalar(0) })
	assert.Panics(t, func() { Vec3(1, 2, 3).Div(Vec3(1, 0, 1)) })

	v := Vec2(1.0, -1).DivScalar(0)
	assert.True(t, math.IsInf(v[0], 1))
	assert.True(t, math.IsInf(v[1], -1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Vector2d{5, 15}, Vec2(0.0, 10).Lerp(Vec2(10.0, 20), 0.5))
	assert.Equal(t, Vector3i{2, 4, 6}, Vec3(0, 0, 0).Lerp(Vec3(4, 8, 12), 0.5))
	assert.Equal(t, Vector4f{1, 1, 1, 1}, Vec4[float32](1, 1, 1, 1).Lerp(Vec4[float32](9, 9, 9, 9), 0))
}

func TestReflect(t *testing.T) {
	v := Vec2(1.0, -1)
	assert.Equal(t, Vector2d{1, 1}, v.Reflected(Vec2(0.0, 1)))
	v.Reflect(Vec2(1.0, 0))
	assert.Equal(t, Vector2d{-1, -1}, v)

	assert.Equal(t, Vector3d{1, 1, 0}, Vec3(1.0, -1, 0).Reflected(Vec3(0.0, 1, 0)))
	n := Vec3(1.0, 1, 0).Normalized()
	r := Vec3(1.0, 0, 0).Reflected(n)
	assert.True(t, r.IsEqualTol(Vec3(0.0, -1, 0), standardTol), r.String())
}

func TestAngleTo(t *testing.T) {
	tolassert.EqualTol(t, math.Pi/2, Vec3(1.0, 0, 0).AngleTo(Vec3(0.0, 1, 0)), standardTol)
	tolassert.EqualTol(t, math.Pi, Vec3(1.0, 0, 0).AngleTo(Vec3(-2.0, 0, 0)), standardTol)
	assert.Equal(t, 0.0, Vec3(1.0, 0, 0).AngleTo(Vector3d{}))
}

func TestIsEqualTol(t *testing.T) {
	assert.True(t, Vec2(1.0, 2).IsEqualTol(Vec2(1.0000001, 2), 1e-6))
	assert.False(t, Vec2(1.0, 2).IsEqualTol(Vec2(1.1, 2), 1e-6))
	assert.True(t, Vec4(1, 2, 3, 4).IsEqualTol(Vec4(1, 2, 3, 5), 1))
	assert.False(t, Vec3(1, 2, 3).IsEqualTol(Vec3(1, 2, 5), 1))
}

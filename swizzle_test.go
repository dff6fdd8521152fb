// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwizzleRead(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vector2i{1, 2}, v.XY().Vector())
	assert.Equal(t, Vector2i{3, 1}, v.ZX().Vector())
	assert.Equal(t, Vector3i{3, 2, 1}, v.BGR().Vector())
	assert.Equal(t, Vector3i{2, 2, 1}, v.TTS().Vector())
	assert.Equal(t, Vector3i{1, 2, 3}, v.XYZ().Vector())

	v4 := Vec4(1, 2, 3, 4)
	assert.Equal(t, Vector4i{4, 3, 2, 1}, v4.WZYX().Vector())
	assert.Equal(t, Vector4i{3, 2, 1, 4}, v4.BGRA().Vector())
	assert.Equal(t, Vector4i{4, 4, 4, 4}, v4.QQQQ().Vector())
	assert.Equal(t, Vector3i{1, 2, 3}, v4.XYZ().Vector())
	assert.Equal(t, Vector2i{4, 1}, v4.AR().Vector())

	v2 := Vec2(1, 2)
	assert.Equal(t, Vector2i{2, 1}, v2.YX().Vector())
	assert.Equal(t, Vector2i{2, 2}, v2.TT().Vector())

	assert.Equal(t, [3]int{2, 1, 0}, v.ZYX().Indices())
	assert.Equal(t, "zyx(3, 2, 1)", v.ZYX().String())
	assert.Equal(t, "xw(1, 4)", v4.RA().String())
}

func TestSwizzleRoundTrip(t *testing.T) {
	v := Vec3(1.5, 2.5, 3.5)
	v.XY().Set(v.XY().Vector())
	assert.Equal(t, Vector3d{1.5, 2.5, 3.5}, v)

	v.XY().Set(Vec2(7.0, 8))
	assert.Equal(t, Vector3d{7, 8, 3.5}, v)

	v.ZX().Set(Vec2(1.0, 2))
	assert.Equal(t, Vector3d{2, 8, 1}, v)

	v4 := Vec4(1, 2, 3, 4)
	v4.WZYX().Set(v4.XYZW().Vector())
	assert.Equal(t, Vector4i{4, 3, 2, 1}, v4)
	v4.BG().Set(Vec2(0, 0))
	assert.Equal(t, Vector4i{4, 0, 0, 1}, v4)

	w := v4
	v4.XYZ().SetScalar(9)
	assert.Equal(t, Vector4i{9, 9, 9, 1}, v4)
	assert.Equal(t, Vector4i{4, 0, 0, 1}, w)
}

func TestSwizzleRepeatedWrite(t *testing.T) {
	v := Vector2f{1, 2}
	v.XX().Set(Vector2f{5, 6})
	assert.Equal(t, Vector2f{6, 2}, v)

	v3 := Vec3(1, 2, 3)
	v3.ZYZ().Set(Vec3(7, 8, 9))
	assert.Equal(t, Vector3i{1, 8, 9}, v3)

	v4 := Vec4(1, 2, 3, 4)
	v4.XXXY().Set(Vec4(5, 6, 7, 8))
	assert.Equal(t, Vector4i{7, 8, 3, 4}, v4)
}

func TestSwizzleSetChecked(t *testing.T) {
	v := Vec2(1, 2)
	assert.True(t, v.XX().HasRepeats())
	err := v.XX().SetChecked(Vec2(5, 6))
	assert.ErrorIs(t, err, ErrRepeatedComponent)
	assert.Equal(t, Vector2i{1, 2}, v)

	assert.False(t, v.YX().HasRepeats())
	require.NoError(t, v.YX().SetChecked(Vec2(5, 6)))
	assert.Equal(t, Vector2i{6, 5}, v)

	v3 := Vec3(1, 2, 3)
	assert.ErrorIs(t, v3.XYX().SetChecked(Vec3(0, 0, 0)), ErrRepeatedComponent)
	require.NoError(t, v3.ZXY().SetChecked(Vec3(4, 5, 6)))
	assert.Equal(t, Vector3i{5, 6, 4}, v3)

	v4 := Vec4(1, 2, 3, 4)
	assert.ErrorIs(t, v4.XYZX().SetChecked(Vec4(0, 0, 0, 0)), ErrRepeatedComponent)
	assert.Equal(t, Vector4i{1, 2, 3, 4}, v4)
}

func TestSwizzleArithmetic(t *testing.T) {
	v := Vec2(1, 2)
	v.XX().SetAdd(Vec2(10, 20))
	assert.Equal(t, Vector2i{21, 2}, v)

	v = Vec2(1, 2)
	v.YX().SetAdd(Vec2(10, 20))
	assert.Equal(t, Vector2i{21, 12}, v)

	v3 := Vec3(1.0, 2, 3)
	assert.Equal(t, Vector2d{4, 2}, v3.ZX().Add(Vec2(1.0, 1)))
	assert.Equal(t, Vector2d{2, 0}, v3.ZX().Sub(Vec2(1.0, 1)))
	assert.Equal(t, Vector2d{6, 2}, v3.ZX().MulScalar(2))
	assert.Equal(t, Vector3d{-3, -2, -1}, v3.ZYX().Negate())
	assert.Equal(t, Vector3d{1, 2, 3}, v3)

	v3.ZX().SetMulScalar(2)
	assert.Equal(t, Vector3d{2, 2, 6}, v3)
	v3.XYZ().SetSubScalar(1).SetDivScalar(0.5)
	assert.Equal(t, Vector3d{2, 2, 10}, v3)
	v3.YZ().SetMul(Vec2(2.0, 0.5)).SetAddScalar(1)
	assert.Equal(t, Vector3d{2, 5, 6}, v3)
	v3.XZ().SetDiv(Vec2(2.0, 3)).SetSub(Vec2(1.0, 1))
	assert.Equal(t, Vector3d{0, 5, 1}, v3)

	v4 := Vec4(1, 2, 3, 4)
	assert.Equal(t, Vector4i{5, 5, 5, 5}, v4.WZYX().Add(v4))
	assert.Equal(t, 20.0, v4.WZYX().Dot(v4))
	assert.Equal(t, math.Sqrt(17), v4.RA().Length())
	assert.Equal(t, Vector4i{2, 3, 4, 5}, v4.XYZW().AddScalar(1))
	assert.Equal(t, Vector4i{1, 2, 3, 4}, v4)
	v4.STPQ().SetAddScalar(1)
	assert.Equal(t, Vector4i{2, 3, 4, 5}, v4)
}

func TestSwizzleByName(t *testing.T) {
	v := Vec3(1, 2, 3)
	s, err := v.Swizzle3("bgr")
	require.NoError(t, err)
	assert.Equal(t, v.BGR(), s)
	assert.Equal(t, Vector3i{3, 2, 1}, s.Vector())

	s, err = v.Swizzle3("ZYX")
	require.NoError(t, err)
	s.Set(Vec3(7, 8, 9))
	assert.Equal(t, Vector3i{9, 8, 7}, v)

	s2, err := v.Swizzle2("tp")
	require.NoError(t, err)
	assert.Equal(t, Vector2i{8, 7}, s2.Vector())

	v4 := Vec4(1, 2, 3, 4)
	s4, err := v4.Swizzle4("aaar")
	require.NoError(t, err)
	assert.Equal(t, Vector4i{4, 4, 4, 1}, s4.Vector())
	s43, err := v4.Swizzle3("wxy")
	require.NoError(t, err)
	assert.Equal(t, Vector3i{4, 1, 2}, s43.Vector())
	s42, err := v4.Swizzle2("qs")
	require.NoError(t, err)
	assert.Equal(t, Vector2i{4, 1}, s42.Vector())

	v2 := Vec2(1, 2)
	s22, err := v2.Swizzle2("yx")
	require.NoError(t, err)
	assert.Equal(t, Vector2i{2, 1}, s22.Vector())

	for dim, schemes := range swizzleSchemes {
		for _, sc := range schemes {
			switch dim {
			case 2:
				s, err := v2.Swizzle2(sc)
				require.NoError(t, err, sc)
				assert.Equal(t, [2]int{0, 1}, s.Indices())
			case 3:
				s, err := v.Swizzle3(sc)
				require.NoError(t, err, sc)
				assert.Equal(t, [3]int{0, 1, 2}, s.Indices())
			case 4:
				s, err := v4.Swizzle4(sc)
				require.NoError(t, err, sc)
				assert.Equal(t, [4]int{0, 1, 2, 3}, s.Indices())
			}
		}
	}

	for _, name := range []string{"xg", "xw", "xyz", "", "x1"} {
		_, err := v.Swizzle2(name)
		assert.ErrorIs(t, err, ErrInvalidSwizzle, name)
	}
	_, err = v2.Swizzle2("rg")
	assert.ErrorIs(t, err, ErrInvalidSwizzle)
	_, err = v.Swizzle3("xyw")
	assert.ErrorIs(t, err, ErrInvalidSwizzle)
	_, err = v4.Swizzle4("rgbw")
	assert.ErrorIs(t, err, ErrInvalidSwizzle)
}

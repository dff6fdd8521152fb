// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"testing"

	"cogentcore.org/vecmath/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	vs := []Vector3d{{1, 2, 3}, {-4, 0.5, 2}, {0.25, -1, 8}, {0, 0, 0}}
	for _, a := range vs {
		for _, b := range vs {
			assert.Equal(t, Dot(a, b), Dot(b, a))
			for _, c := range vs {
				tolassert.EqualTol(t, Dot(a, c)+Dot(b, c), Dot(a.Add(b), c), standardTol)
			}
		}
	}
	assert.Equal(t, 11.0, Dot(Vec2(1, 2), Vec2(3, 4)))
	assert.Equal(t, float32(11), DotF(Vec2(1, 2), Vec2(3, 4)))
	assert.Equal(t, float32(30), DotF(Vec4[float32](1, 2, 3, 4), Vec4[float32](1, 2, 3, 4)))
	assert.Equal(t, Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)), Dot(Vec3(1, 2, 3), Vec3(4, 5, 6)))
}

func TestCross(t *testing.T) {
	assert.Equal(t, Vec3(0, 0, 1), Cross(Vec3(1, 0, 0), Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Cross(Vec3(0, 1, 0), Vec3(0, 0, 1)))
	assert.Equal(t, Vec3(0, 1, 0), Cross(Vec3(0, 0, 1), Vec3(1, 0, 0)))

	vs := []Vector3d{{1, 2, 3}, {-4, 0.5, 2}, {0.25, -1, 8}, {3, 3, 3}}
	for _, a := range vs {
		for _, b := range vs {
			c := Cross(a, b)
			tolassert.EqualTol(t, 0, Dot(c, a), standardTol)
			tolassert.EqualTol(t, 0, Dot(c, b), standardTol)
			assert.Equal(t, c, Cross(b, a).Negate())
			assert.Equal(t, c, a.Cross(b))
		}
	}
	assert.True(t, Cross(Vec3(1, 2, 3), Vec3(2, 4, 6)).IsZero())
}

func TestCross4(t *testing.T) {
	x := Vec4(1, 0, 0, 0)
	y := Vec4(0, 1, 0, 0)
	z := Vec4(0, 0, 1, 0)
	w := Vec4(0, 0, 0, 1)
	assert.Equal(t, w, Cross4(x, y, z))
	assert.Equal(t, w.Negate(), Cross4(y, x, z))
	assert.Equal(t, x.Negate(), Cross4(y, z, w))

	a := Vec4(1, 2, 3, 4)
	b := Vec4(0, 1, -1, 2)
	c := Vec4(3, 0, 1, 1)
	r := Cross4(a, b, c)
	assert.False(t, r.IsZero())
	assert.Equal(t, 0.0, Dot(r, a))
	assert.Equal(t, 0.0, Dot(r, b))
	assert.Equal(t, 0.0, Dot(r, c))
	assert.Equal(t, r.Negate(), Cross4(b, a, c))

	assert.True(t, Cross4(a, b, a.Add(b)).IsZero())
}

func TestReflectFunc(t *testing.T) {
	assert.Equal(t, Vector2d{1, 1}, Reflect(Vec2(1.0, -1), Vec2(0.0, 1)))
	assert.Equal(t, Vector3d{-1, 1, 2}, Reflect(Vec3(1.0, 1, 2), Vec3(1.0, 0, 0)))
	v := Vec3(1.0, 1, 2)
	assert.Equal(t, v.Reflected(Vec3(0.0, 0, 1)), Reflect(v, Vec3(0.0, 0, 1)))
}

func TestScale(t *testing.T) {
	v := Vector3d{2, 2, 2}
	assert.Equal(t, Vector3d{4, 4, 4}, v.MulScalar(2.0))
	assert.Equal(t, Vector3d{4, 4, 4}, Scale(2.0, v))
	assert.Equal(t, v.MulScalar(2.0), Scale(2.0, v))

	assert.Equal(t, Vector2u8{3, 6}, Scale(uint8(3), Vec2[uint8](1, 2)))
	assert.Equal(t, Vector4f{0.5, 1, 1.5, 2}, Scale(float32(0.5), Vec4[float32](1, 2, 3, 4)))
	for _, s := range []float64{-2, 0, 0.5, 3} {
		assert.Equal(t, v.MulScalar(s), Scale(s, v))
	}
}

func TestNormalizedFunc(t *testing.T) {
	assert.Equal(t, Vector2f{0, 0}, Normalized(Vector2f{0, 0}))
	assert.Equal(t, Vector3d{0, 1, 0}, Normalized(Vec3(0.0, 5, 0)))
	tolassert.EqualTol(t, 1.0, Normalized(Vec4(1.0, 1, 1, 1)).Length(), standardTol)
}

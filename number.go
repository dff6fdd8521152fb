// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "golang.org/x/exp/constraints"

// Number is the constraint for the element type of all vectors and
// matrices: any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector2 element type aliases.
type (
	Vector2f   = Vector2[float32]
	Vector2d   = Vector2[float64]
	Vector2i   = Vector2[int]
	Vector2i8  = Vector2[int8]
	Vector2i16 = Vector2[int16]
	Vector2i32 = Vector2[int32]
	Vector2i64 = Vector2[int64]
	Vector2u   = Vector2[uint]
	Vector2u8  = Vector2[uint8]
	Vector2u16 = Vector2[uint16]
	Vector2u32 = Vector2[uint32]
	Vector2u64 = Vector2[uint64]
)

// Vector3 element type aliases.
type (
	Vector3f   = Vector3[float32]
	Vector3d   = Vector3[float64]
	Vector3i   = Vector3[int]
	Vector3i8  = Vector3[int8]
	Vector3i16 = Vector3[int16]
	Vector3i32 = Vector3[int32]
	Vector3i64 = Vector3[int64]
	Vector3u   = Vector3[uint]
	Vector3u8  = Vector3[uint8]
	Vector3u16 = Vector3[uint16]
	Vector3u32 = Vector3[uint32]
	Vector3u64 = Vector3[uint64]
)

// Vector4 element type aliases.
type (
	Vector4f   = Vector4[float32]
	Vector4d   = Vector4[float64]
	Vector4i   = Vector4[int]
	Vector4i8  = Vector4[int8]
	Vector4i16 = Vector4[int16]
	Vector4i32 = Vector4[int32]
	Vector4i64 = Vector4[int64]
	Vector4u   = Vector4[uint]
	Vector4u8  = Vector4[uint8]
	Vector4u16 = Vector4[uint16]
	Vector4u32 = Vector4[uint32]
	Vector4u64 = Vector4[uint64]
)

// Matrix element type aliases.
type (
	Matrix2f = Matrix2[float32]
	Matrix2d = Matrix2[float64]
	Matrix3f = Matrix3[float32]
	Matrix3d = Matrix3[float64]
	Matrix4f = Matrix4[float32]
	Matrix4d = Matrix4[float64]
)

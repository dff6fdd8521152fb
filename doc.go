// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath provides generic 2, 3 and 4 component vectors and
// matrices over any integer or floating point element type, for
// graphics, physics and simulation code.
//
// Each vector is a plain fixed-size array, so v[i] is the indexed view
// of its components. The same storage is also readable and writable through
// position (X, Y, Z, W), color (R, G, B, A) and texture (S, T, P, Q)
// accessors, and through swizzle views such as v.XY(), v.BGR() or
// v.TTSS(), which alias the vector's storage: reading a view yields a new
// vector, and setting a view writes back into the parent.
//
// Methods with a value receiver never modify their operand and return a
// new value; the Set* methods with a pointer receiver modify in place.
// Indexing outside of a vector panics, as does any other out of range
// component access.
package vecmath

//go:generate go run ./cmd/swizzlegen -c swizzlegen.toml

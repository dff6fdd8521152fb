// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzlegen generates the swizzle accessor methods of the
// vecmath vector types: for every vector dimension and label scheme, one
// method per ordered selection of two or more components, such as
// XY, ZYX, BGRA or TTSS.
package swizzlegen

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// EqualTolSlice asserts that the given two slices of numbers are about
// equal to each other element-wise, using the given tolerance value.
func EqualTolSlice[T constraints.Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		ok = EqualTol(t, expected[i], actual[i], tolerance, msgAndArgs...) && ok
	}
	return ok
}

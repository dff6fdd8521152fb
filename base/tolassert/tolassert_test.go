// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	Equal(t, 3.1415, 3.1416)
	EqualTol(t, float32(1), float32(1.00001), 0.0001)
	EqualTolSlice(t, []float64{1, 2}, []float64{1.0000001, 1.9999999}, 1e-6)

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1.0, 1.1, 0.01))
	assert.True(t, mt.failed)

	mt = &mockT{}
	assert.False(t, EqualTolSlice(mt, []float64{1}, []float64{1, 2}, 0.01))
	assert.True(t, mt.failed)
}

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

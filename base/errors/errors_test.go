// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBad = New("bad value")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(errBad), errBad)
}

func TestJoin(t *testing.T) {
	err := fmt.Errorf("loading: %w", errBad)
	assert.ErrorIs(t, Join(nil, err), errBad)
	assert.ErrorContains(t, Join(errBad, New("other")), "bad value\nother")
	assert.NoError(t, Join(nil, nil))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.Contains(t, info, "errors_test.go")
}

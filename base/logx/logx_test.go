// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))

	UserLevel = slog.LevelWarn
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "count", 3)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg=shown`)
	assert.Contains(t, buf.String(), "count=3")
	assert.NotContains(t, buf.String(), "time=")

	buf.Reset()
	UserLevel = slog.LevelDebug
	l.Debug("now shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/vecmath/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "accessors.go")
	cmd := newCommand()
	cmd.SetArgs([]string{"-c", filepath.Join("..", "..", "swizzlegen.toml"), "-o", out, "--package", "vec", "-v"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "// Code generated by \"swizzlegen\"; DO NOT EDIT.\n\npackage vec\n"))
	assert.Contains(t, string(b), "func (v *Vector4[T]) WZYX() Swizzle4[T] {")
}

func TestCommandProfile(t *testing.T) {
	dir := t.TempDir()
	cmd := newCommand()
	cmd.SetArgs([]string{"-o", filepath.Join(dir, "out.go"), "--profile", dir, "-q"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, slog.LevelError, logx.UserLevel)
	assert.FileExists(t, filepath.Join(dir, "cpu.pprof"))
}

func TestCommandErrors(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{"-c", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, cmd.Execute())

	cmd = newCommand()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

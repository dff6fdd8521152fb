// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name  string   `toml:"name" yaml:"name" json:"name"`
	Count int      `toml:"count" yaml:"count" json:"count"`
	Tags  []string `toml:"tags" yaml:"tags" json:"tags"`
}

func TestOpen(t *testing.T) {
	files := map[string]string{
		"s.toml":  "name = \"toml\"\ncount = 2\ntags = [\"a\", \"b\"]\n",
		"s.yaml":  "name: yaml\ncount: 2\ntags: [a, b]\n",
		"s.hjson": "{\n  # comment\n  name: hjson\n  count: 2\n  tags: [\"a\", \"b\"]\n}\n",
		"s.json":  `{"name": "json", "count": 2, "tags": ["a", "b"]}`,
	}
	dir := t.TempDir()
	for fn, content := range files {
		path := filepath.Join(dir, fn)
		require.NoError(t, os.WriteFile(path, []byte(content), 0666))

		s := settings{Count: 7}
		require.NoError(t, Open(&s, path))
		assert.Equal(t, fn[2:], s.Name)
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, []string{"a", "b"}, s.Tags)
	}
}

func TestKeepsUnsetFields(t *testing.T) {
	s := settings{Name: "default", Count: 7}
	require.NoError(t, Read(&s, strings.NewReader("count = 3\n"), "x.toml"))
	assert.Equal(t, "default", s.Name)
	assert.Equal(t, 3, s.Count)
}

func TestErrors(t *testing.T) {
	_, err := DecoderFor("config.ini")
	assert.Error(t, err)

	var s settings
	assert.Error(t, Open(&s, filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, Read(&s, strings.NewReader("count = ["), "bad.toml"))
}

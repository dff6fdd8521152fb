// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuples(t *testing.T) {
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, Tuples(2, 2))
	assert.Len(t, Tuples(3, 2), 9)
	assert.Len(t, Tuples(3, 3), 27)
	assert.Len(t, Tuples(4, 2), 16)
	assert.Len(t, Tuples(4, 3), 64)
	assert.Len(t, Tuples(4, 4), 256)

	ts := Tuples(3, 3)
	assert.Equal(t, []int{0, 0, 0}, ts[0])
	assert.Equal(t, []int{0, 0, 1}, ts[1])
	assert.Equal(t, []int{2, 2, 2}, ts[26])
}

func TestAccessor(t *testing.T) {
	a := &Accessor{Dim: 4, Scheme: "rgba", Tuple: []int{2, 1, 0, 3}}
	assert.Equal(t, 4, a.Degree())
	assert.Equal(t, "BGRA", a.Name())
	assert.Equal(t, "b, g, r, a", a.Components())
	assert.Equal(t, "2, 1, 0, 3", a.Indices())
	assert.Equal(t, "tts", Name("stp", []int{1, 1, 0}))
}

func TestFind(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	require.NoError(t, g.Find())

	counts := map[int]int{}
	for _, a := range g.Accessors {
		counts[a.Dim]++
	}
	assert.Equal(t, 2*4, counts[2])
	assert.Equal(t, 3*(9+27), counts[3])
	assert.Equal(t, 3*(16+64+256), counts[4])

	cfg := DefaultConfig()
	cfg.MinDegree = 3
	g = NewGenerator(cfg)
	require.NoError(t, g.Find())
	assert.Len(t, g.Accessors, 3*27+3*(64+256))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schemes3 = []string{"xyz", "xy"}
	assert.Error(t, NewGenerator(cfg).Find())

	cfg = DefaultConfig()
	cfg.Schemes2 = []string{"xx"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Schemes4 = []string{"XYZW"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MinDegree = 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Package = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Package = ""
	cfg.Schemes2 = []string{"xx", "S"}
	err := cfg.Validate()
	assert.ErrorContains(t, err, "package name must not be empty")
	assert.ErrorContains(t, err, `"xx" repeats`)
	assert.ErrorContains(t, err, `"S" for 2 component vectors`)

	// same names from two schemes
	cfg = DefaultConfig()
	cfg.Schemes3 = []string{"xyz", "zyx"}
	assert.ErrorContains(t, NewGenerator(cfg).Find(), "both label schemes")
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "swizzlegen.go")
	require.NoError(t, Generate(cfg))

	b, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "// Code generated by \"swizzlegen\"; DO NOT EDIT.\n\npackage vecmath\n"))
	assert.Contains(t, s, `// XY returns a Swizzle2 view of the x, y components of v.
func (v *Vector3[T]) XY() Swizzle2[T] {
	return Swizzle2[T]{v[:], [2]int{0, 1}}
}`)
	assert.Contains(t, s, "func (v *Vector4[T]) BGRA() Swizzle4[T] {\n\treturn Swizzle4[T]{v[:], [4]int{2, 1, 0, 3}}\n}")
	assert.Equal(t, 1124, strings.Count(s, "\nfunc (v *Vector"))
	assert.NotContains(t, s, "func (v *Vector2[T]) RG()")
	assert.Contains(t, s, "var swizzleSchemes = [5][]string{\n\t2: {\"xy\", \"st\"},\n")

	cfg.Schemes2 = []string{"uv"}
	require.NoError(t, Generate(cfg))
	b, err = os.ReadFile(cfg.Output)
	require.NoError(t, err)
	s = string(b)
	assert.Contains(t, s, "\t2: {\"uv\"},\n")
	assert.Contains(t, s, "func (v *Vector2[T]) VU() Swizzle2[T] {")
	assert.NotContains(t, s, "func (v *Vector2[T]) YX()")
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	cfg, err := OpenConfig(filepath.Join("..", "swizzlegen.toml"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", cfg.Output))
	require.NoError(t, err)

	cfg.Output = filepath.Join(t.TempDir(), cfg.Output)
	require.NoError(t, Generate(cfg))
	have, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(have), "swizzlegen.go is out of date; run go generate")
}

func TestOpenConfig(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"cfg.toml":  "package = \"vec\"\nmin_degree = 3\nschemes2 = [\"uv\"]\n",
		"cfg.yaml":  "package: vec\nmin_degree: 3\nschemes2: [uv]\n",
		"cfg.hjson": "{\n  package: vec\n  min_degree: 3\n  schemes2: [\"uv\"]\n}\n",
		"cfg.json":  `{"package": "vec", "min_degree": 3, "schemes2": ["uv"]}`,
	}
	for name, content := range files {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
		cfg, err := OpenConfig(fn)
		require.NoError(t, err, name)
		assert.Equal(t, "vec", cfg.Package, name)
		assert.Equal(t, 3, cfg.MinDegree, name)
		assert.Equal(t, []string{"uv"}, cfg.Schemes2, name)
		// unset values keep their defaults
		assert.Equal(t, "swizzlegen.go", cfg.Output, name)
		assert.Equal(t, []string{"xyzw", "rgba", "stpq"}, cfg.Schemes4, name)
	}

	_, err := OpenConfig(filepath.Join(dir, "cfg.ini"))
	assert.Error(t, err)
}

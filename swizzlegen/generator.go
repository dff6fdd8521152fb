// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// Accessor is one generated swizzle accessor method.
type Accessor struct {

	// Dim is the number of components of the vector the accessor is on.
	Dim int

	// Scheme is the label scheme the accessor is named in, such as "xyzw".
	Scheme string

	// Tuple is the ordered component indices the accessor selects.
	Tuple []int
}

// Degree returns the number of components the accessor selects.
func (a *Accessor) Degree() int {
	return len(a.Tuple)
}

// Name returns the method name of the accessor, such as XZY.
func (a *Accessor) Name() string {
	return strings.ToUpper(Name(a.Scheme, a.Tuple))
}

// Components returns the lowercase labels of the selected
// components separated by commas, for documentation.
func (a *Accessor) Components() string {
	s := make([]string, len(a.Tuple))
	for i, j := range a.Tuple {
		s[i] = a.Scheme[j : j+1]
	}
	return strings.Join(s, ", ")
}

// Indices returns the tuple formatted as Go array elements.
func (a *Accessor) Indices() string {
	s := make([]string, len(a.Tuple))
	for i, j := range a.Tuple {
		s[i] = strconv.Itoa(j)
	}
	return strings.Join(s, ", ")
}

// Name returns the lowercase swizzle name of the given tuple
// in the given label scheme.
func Name(scheme string, tuple []int) string {
	b := make([]byte, len(tuple))
	for i, j := range tuple {
		b[i] = scheme[j]
	}
	return string(b)
}

// Tuples returns all of the ordered k-tuples of the indices 0 to n-1,
// with repetition, in lexicographic order. There are n^k of them.
func Tuples(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	var ts [][]int
	for _, prefix := range Tuples(n, k-1) {
		for i := range n {
			t := make([]int, 0, k)
			t = append(t, prefix...)
			ts = append(ts, append(t, i))
		}
	}
	return ts
}

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config    *Config      // The configuration information
	Buf       bytes.Buffer // The accumulated output.
	Accessors []*Accessor  // The accessors to generate
}

// NewGenerator returns a new generator with the
// given configuration information.
func NewGenerator(config *Config) *Generator {
	return &Generator{Config: config}
}

// Printf prints the formatted string to the
// accumulated output in [Generator.Buf]
func (g *Generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.Buf, format, args...)
}

// PrintHeader prints the header and package clause
// to the accumulated output
func (g *Generator) PrintHeader() {
	g.Printf("// Code generated by \"swizzlegen\"; DO NOT EDIT.\n\n")
	g.Printf("package %s\n\n", g.Config.Package)
}

// PrintSchemes prints the table of label schemes, indexed by
// vector dimension, that swizzles are looked up in by name.
func (g *Generator) PrintSchemes() {
	g.Printf("// swizzleSchemes are the component label schemes of the\n")
	g.Printf("// generated accessors, indexed by vector dimension.\n")
	g.Printf("var swizzleSchemes = [5][]string{\n")
	for dim := 2; dim <= 4; dim++ {
		qs := make([]string, len(g.Config.Schemes(dim)))
		for i, sc := range g.Config.Schemes(dim) {
			qs[i] = strconv.Quote(sc)
		}
		g.Printf("\t%d: {%s},\n", dim, strings.Join(qs, ", "))
	}
	g.Printf("}\n\n")
}

// Find validates the configuration and adds every accessor it
// specifies to [Generator.Accessors]: for each vector dimension,
// label scheme and degree, one accessor per tuple.
func (g *Generator) Find() error {
	if err := g.Config.Validate(); err != nil {
		return err
	}
	g.Accessors = nil
	for dim := 2; dim <= 4; dim++ {
		names := map[string]string{}
		for _, scheme := range g.Config.Schemes(dim) {
			for deg := g.Config.MinDegree; deg <= dim; deg++ {
				for _, t := range Tuples(dim, deg) {
					a := &Accessor{Dim: dim, Scheme: scheme, Tuple: t}
					nm := a.Name()
					if other, has := names[nm]; has {
						return fmt.Errorf("swizzlegen: accessor %s of Vector%d is named in both label schemes %q and %q", nm, dim, other, scheme)
					}
					names[nm] = scheme
					g.Accessors = append(g.Accessors, a)
				}
			}
		}
		slog.Debug("found swizzle accessors", "dim", dim, "count", len(names))
	}
	return nil
}

// Generate produces the code for the accessors stored in
// [Generator.Accessors] and stores it in [Generator.Buf].
// It returns whether there were any accessors to generate,
// and any error that occurred.
func (g *Generator) Generate() (bool, error) {
	if len(g.Accessors) == 0 {
		return false, nil
	}
	for _, a := range g.Accessors {
		if err := g.ExecTmpl(AccessorTmpl, a); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Write formats the data in the Generator's buffer
// ([Generator.Buf]) and writes it to the file specified by
// [Generator.Config.Output].
func (g *Generator) Write() error {
	b, err := imports.Process(g.Config.Output, g.Buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("swizzlegen: error formatting generated code: %w", err)
	}
	return os.WriteFile(g.Config.Output, b, 0666)
}

// Generate generates the swizzle accessors specified by the
// given configuration and writes them to the configuration output file.
//
// It is a simple entry point to swizzlegen that does all
// of the steps; for more specific functionality, create
// a new [Generator] with [NewGenerator] and call methods on it.
func Generate(cfg *Config) error {
	g := NewGenerator(cfg)
	err := g.Find()
	if err != nil {
		return fmt.Errorf("swizzlegen: Generate: %w", err)
	}
	g.PrintHeader()
	g.PrintSchemes()
	has, err := g.Generate()
	if err != nil {
		return fmt.Errorf("swizzlegen: Generate: error generating code: %w", err)
	}
	if !has {
		slog.Warn("no swizzle accessors to generate")
		return nil
	}
	err = g.Write()
	if err != nil {
		return fmt.Errorf("swizzlegen: Generate: error writing code: %w", err)
	}
	slog.Info("wrote swizzle accessors", "file", g.Config.Output, "count", len(g.Accessors))
	return nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"fmt"
	"text/template"
)

// AccessorTmpl is the template for one swizzle accessor method.
var AccessorTmpl = template.Must(template.New("Accessor").Parse(
	`// {{.Name}} returns a Swizzle{{.Degree}} view of the {{.Components}} components of v.
func (v *Vector{{.Dim}}[T]) {{.Name}}() Swizzle{{.Degree}}[T] {
	return Swizzle{{.Degree}}[T]{v[:], [{{.Degree}}]int{ {{- .Indices -}} }}
}

`))

// ExecTmpl executes the given template with the given accessor and
// writes the result to [Generator.Buf].
func (g *Generator) ExecTmpl(t *template.Template, a *Accessor) error {
	err := t.Execute(&g.Buf, a)
	if err != nil {
		return fmt.Errorf("programmer error: internal error: error executing template %q: %w", t.Name(), err)
	}
	return nil
}

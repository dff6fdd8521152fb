// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"fmt"
	"strings"

	"cogentcore.org/vecmath/base/errors"
	"cogentcore.org/vecmath/base/iox"
)

// Config contains the configuration information
// used by swizzlegen
type Config struct {

	// the name of the package of the generated file
	Package string `toml:"package" yaml:"package" json:"package"`

	// the output file location, relative to the current directory
	Output string `toml:"output" yaml:"output" json:"output"`

	// the component label schemes of two component vectors
	Schemes2 []string `toml:"schemes2" yaml:"schemes2" json:"schemes2"`

	// the component label schemes of three component vectors
	Schemes3 []string `toml:"schemes3" yaml:"schemes3" json:"schemes3"`

	// the component label schemes of four component vectors
	Schemes4 []string `toml:"schemes4" yaml:"schemes4" json:"schemes4"`

	// the smallest number of components an accessor selects
	MinDegree int `toml:"min_degree" yaml:"min_degree" json:"min_degree"`
}

// DefaultConfig returns a new [Config] with the default values.
func DefaultConfig() *Config {
	return &Config{
		Package:   "vecmath",
		Output:    "swizzlegen.go",
		Schemes2:  []string{"xy", "st"},
		Schemes3:  []string{"xyz", "rgb", "stp"},
		Schemes4:  []string{"xyzw", "rgba", "stpq"},
		MinDegree: 2,
	}
}

// OpenConfig returns the [DefaultConfig] updated with the values
// in the given config file, which may be in any format supported by [iox].
func OpenConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if err := iox.Open(cfg, filename); err != nil {
		return nil, fmt.Errorf("swizzlegen: loading config: %w", err)
	}
	return cfg, nil
}

// Schemes returns the label schemes for vectors with the given
// number of components.
func (c *Config) Schemes(dim int) []string {
	switch dim {
	case 2:
		return c.Schemes2
	case 3:
		return c.Schemes3
	case 4:
		return c.Schemes4
	}
	return nil
}

// Validate returns an error if the configuration cannot
// produce a valid accessor file. All of the problems found
// are joined into the returned error.
func (c *Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("swizzlegen: package name must not be empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("swizzlegen: output file must not be empty"))
	}
	if c.MinDegree < 2 || c.MinDegree > 4 {
		errs = append(errs, fmt.Errorf("swizzlegen: min degree must be between 2 and 4, not %d", c.MinDegree))
	}
	for dim := 2; dim <= 4; dim++ {
		for _, s := range c.Schemes(dim) {
			errs = append(errs, validateScheme(s, dim))
		}
	}
	return errors.Join(errs...)
}

func validateScheme(s string, dim int) error {
	if len(s) != dim {
		return fmt.Errorf("swizzlegen: label scheme %q for %d component vectors must have %d letters", s, dim, dim)
	}
	if s != strings.ToLower(s) {
		return fmt.Errorf("swizzlegen: label scheme %q must be lowercase", s)
	}
	for i := range len(s) {
		if strings.IndexByte(s, s[i]) != i {
			return fmt.Errorf("swizzlegen: label scheme %q repeats %q", s, s[i])
		}
	}
	return nil
}

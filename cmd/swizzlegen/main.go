// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swizzlegen is the command line interface to the
// swizzlegen library, which generates the swizzle accessor
// methods of the vecmath vector types.
package main

import (
	"os"

	"cogentcore.org/vecmath/base/errors"
	"cogentcore.org/vecmath/base/logx"
	"cogentcore.org/vecmath/swizzlegen"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the command line options, applied on top
// of the config file when their flags are set.
type options struct {
	config  string
	output  string
	pkg     string
	profile string
	vv      bool
	v       bool
	q       bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.config, "config", "c", "", "the config file (.toml, .yaml, .hjson or .json)")
	fs.StringVarP(&o.output, "output", "o", "", "the output file, overriding the config file")
	fs.StringVar(&o.pkg, "package", "", "the package name of the output file, overriding the config file")
	fs.StringVar(&o.profile, "profile", "", "write a CPU profile to the given directory")
	fs.BoolVar(&o.vv, "vv", false, "print debug messages")
	fs.BoolVarP(&o.v, "verbose", "v", false, "print informational messages")
	fs.BoolVarP(&o.q, "quiet", "q", false, "only print errors")
}

func newCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "swizzlegen",
		Short:         "Generate the swizzle accessor methods of the vecmath vector types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), o)
		},
	}
	addFlags(cmd.Flags(), o)
	return cmd
}

func run(fs *pflag.FlagSet, o *options) error {
	logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
	if o.profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.profile), profile.Quiet).Stop()
	}
	cfg := swizzlegen.DefaultConfig()
	if o.config != "" {
		var err error
		cfg, err = swizzlegen.OpenConfig(o.config)
		if err != nil {
			return err
		}
	}
	if fs.Changed("output") {
		cfg.Output = o.output
	}
	if fs.Changed("package") {
		cfg.Package = o.pkg
	}
	return swizzlegen.Generate(cfg)
}

func main() {
	logx.SetDefaultLogger()
	if err := newCommand().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

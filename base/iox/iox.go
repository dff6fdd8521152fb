// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides decoding of configuration files in
// the formats supported by the command line tools, selected
// by file extension.
package iox

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DecodeFunc decodes the given data into v, which must be a pointer.
type DecodeFunc func(data []byte, v any) error

// Decoders are the [DecodeFunc]s for each supported file extension,
// including the leading dot.
var Decoders = map[string]DecodeFunc{
	".toml":  toml.Unmarshal,
	".yaml":  yaml.Unmarshal,
	".yml":   yaml.Unmarshal,
	".hjson": DecodeHJSON,
	".json":  DecodeHJSON,
}

// DecoderFor returns the [DecodeFunc] for the given file name
// based on its extension.
func DecoderFor(filename string) (DecodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dec, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("iox: unsupported file extension %q for %q", ext, filename)
	}
	return dec, nil
}

// Open decodes the file with the given name into v, using the
// decoder for its extension. Fields of v that are not present
// in the file keep their current values.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, filename)
}

// Read decodes all of r into v, using the decoder for the
// extension of the given file name.
func Read(v any, r io.Reader, filename string) error {
	dec, err := DecoderFor(filename)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := dec(data, v); err != nil {
		return fmt.Errorf("iox: decoding %q: %w", filename, err)
	}
	return nil
}

// DecodeHJSON decodes HJSON (a superset of JSON) data into v.
// The data is first decoded into a generic map and then re-encoded
// as JSON, so that the standard json struct tags apply to v.
func DecodeHJSON(data []byte, v any) error {
	var m map[string]any
	if err := hjson.Unmarshal(data, &m); err != nil {
		return err
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

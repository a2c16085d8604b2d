// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette is a named list of preset colors, stored in YAML files:
//
//	name: Pastel
//	colors: ["#fbcfe8", "#bfdbfe"]
type Palette struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// OpenPalette reads a palette from the given YAML file.
func OpenPalette(filename string) (*Palette, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPalette(f)
}

// ReadPalette reads a palette from the given YAML reader.
// Every color is normalized; an invalid color is an error.
func ReadPalette(r io.Reader) (*Palette, error) {
	p := &Palette{}
	if err := yaml.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("colors.ReadPalette: %w", err)
	}
	for i, c := range p.Colors {
		n, err := Normalize(c)
		if err != nil {
			return nil, fmt.Errorf("colors.ReadPalette: color %d: %w", i, err)
		}
		p.Colors[i] = n
	}
	return p, nil
}

// WritePalette writes the palette to the given writer as YAML.
func WritePalette(w io.Writer, p *Palette) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

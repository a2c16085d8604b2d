// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the user settings of pixel studio, stored
// in a TOML file, and applies them to new projects.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/drive"
	"cogentcore.org/pixelstudio/project"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the default settings file.
const DefaultFile = "~/.pixelstudio/config.toml"

// Config is the main config struct that contains all
// of the settings.
type Config struct {

	// Project contains the settings of new projects.
	Project Project `toml:"project"`

	// PaletteFile is an optional YAML palette file whose colors
	// replace the default palette presets.
	PaletteFile string `toml:"palette_file"`

	// HistoryDepth is the maximum number of undo states.
	HistoryDepth int `toml:"history_depth" default:"30"`

	// DraftDir is where the recovery draft is saved.
	DraftDir string `toml:"draft_dir" default:"~/.pixelstudio"`

	// Relief are the default relief settings of new projects.
	Relief project.Relief `toml:"relief"`

	// Text are the default text settings of new projects.
	Text project.Text `toml:"text"`

	// Hanger are the default hanger settings of new projects.
	Hanger project.Hanger `toml:"hanger"`

	// Drive are the cloud upload settings.
	Drive drive.Settings `toml:"drive"`
}

// Project are the settings of new projects.
type Project struct {
	Name           string  `toml:"name" default:"Untitled"`
	GridW          int     `toml:"grid_w" default:"16"`
	GridH          int     `toml:"grid_h" default:"16"`
	MMScale        float32 `toml:"mm_scale" default:"1"`
	LayerThickness float32 `toml:"layer_thickness" default:"1"`
	BrushSize      int     `toml:"brush_size" default:"1"`
	Color          string  `toml:"color" default:"#3b82f6"`
}

// New returns a new config with all default values.
func New() *Config {
	c := &Config{
		Relief: project.DefaultRelief(),
		Text:   project.DefaultText(),
		Hanger: project.DefaultHanger(),
	}
	if err := SetFromDefaults(c); err != nil {
		slog.Error("config: invalid default tag", "err", err)
	}
	return c
}

// Open reads the config from the given TOML file on top of the
// defaults. A missing file gives the defaults.
func Open(file string) (*Config, error) {
	c := New()
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("config: no settings file, using defaults", "file", path)
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config to the given TOML file.
func (c *Config) Save(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Expand returns the given path with a leading ~ replaced by the
// home directory. It returns the path unchanged if that fails.
func Expand(path string) string {
	p, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return p
}

// DriveSettings returns the drive settings with the token file path expanded.
func (c *Config) DriveSettings() drive.Settings {
	st := c.Drive
	st.TokenFile = Expand(st.TokenFile)
	return st
}

// NewProject returns a new project with the settings applied.
func (c *Config) NewProject() *project.State {
	s := project.New()
	if err := c.Apply(s); err != nil {
		slog.Warn("config: could not apply settings", "err", err)
	}
	return s
}

// Apply copies the project settings, feature defaults and palette
// into the given project. Invalid values are replaced by the project
// defaults.
func (c *Config) Apply(s *project.State) error {
	if err := copier.Copy(s, &c.Project); err != nil {
		return err
	}
	for _, cp := range []struct{ to, from any }{{&s.Relief, &c.Relief}, {&s.Text, &c.Text}, {&s.Hanger, &c.Hanger}} {
		if err := copier.Copy(cp.to, cp.from); err != nil {
			return err
		}
	}
	s.Relief.Normalize()
	s.Text.Normalize()
	s.Hanger.Normalize()
	s.Name = project.CleanName(s.Name)
	if !s.Resize(s.GridW, s.GridH) {
		s.GridW, s.GridH = project.DefaultGridSize, project.DefaultGridSize
	}
	if c, err := colors.Normalize(s.Color); err == nil {
		s.Color = c
	} else {
		s.Color = project.DefaultColor
	}
	if s.MMScale <= 0 {
		s.MMScale = 1
	}
	if s.LayerThickness <= 0 {
		s.LayerThickness = 1
	}
	if s.BrushSize < 1 {
		s.BrushSize = 1
	}
	if c.PaletteFile == "" {
		return nil
	}
	p, err := colors.OpenPalette(Expand(c.PaletteFile))
	if err != nil {
		return err
	}
	if len(p.Colors) > 0 {
		s.PalettePresets = p.Colors
	}
	return nil
}

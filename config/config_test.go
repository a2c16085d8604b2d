// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/pixelstudio/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, 16, c.Project.GridW)
	assert.Equal(t, float32(1), c.Project.MMScale)
	assert.Equal(t, "#3b82f6", c.Project.Color)
	assert.Equal(t, 30, c.HistoryDepth)
	assert.Equal(t, "~/.pixelstudio", c.DraftDir)
	assert.Equal(t, "~/.pixelstudio/google-token.json", c.Drive.TokenFile)
	assert.Equal(t, project.DefaultHanger(), c.Hanger)
}

func TestSetFromDefaults(t *testing.T) {
	type inner struct {
		On bool `default:"true"`
	}
	type obj struct {
		N     int8    `default:"-3"`
		F     float64 `default:"2.5"`
		S     string
		Inner inner
	}
	o := &obj{S: "keep"}
	require.NoError(t, SetFromDefaults(o))
	assert.Equal(t, &obj{N: -3, F: 2.5, S: "keep", Inner: inner{On: true}}, o)

	type bad struct {
		N int `default:"x"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(obj{}))
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")

	c, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, New(), c, "missing file gives defaults")

	require.NoError(t, os.WriteFile(file, []byte(`
history_depth = 10

[project]
grid_w = 32
color = "#F00"

[hanger]
Enabled = true
Style = "heart"

[drive]
client_id = "abc"
`), 0o644))
	c, err = Open(file)
	require.NoError(t, err)
	assert.Equal(t, 10, c.HistoryDepth)
	assert.Equal(t, 32, c.Project.GridW)
	assert.Equal(t, 16, c.Project.GridH)
	assert.True(t, c.Hanger.Enabled)
	assert.Equal(t, project.Heart, c.Hanger.Style)
	assert.Equal(t, float32(3), c.Hanger.Radius)
	assert.Equal(t, "abc", c.Drive.ClientID)

	out := filepath.Join(dir, "sub", "saved.toml")
	require.NoError(t, c.Save(out))
	back, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	require.NoError(t, os.WriteFile(file, []byte("bogus = 1\n"), 0o644))
	_, err = Open(file)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	pal := filepath.Join(dir, "pal.yaml")
	require.NoError(t, os.WriteFile(pal, []byte("name: Two\ncolors: [\"#FFF\", \"#000000\"]\n"), 0o644))

	c := New()
	c.Project.Name = "  Keychain "
	c.Project.GridW = 24
	c.Project.Color = "#F00"
	c.Project.BrushSize = 0
	c.Relief.Enabled = true
	c.Text.Content = "HI"
	c.PaletteFile = pal

	s := c.NewProject()
	assert.Equal(t, "Keychain", s.Name)
	assert.Equal(t, 24, s.GridW)
	assert.Equal(t, 16, s.GridH)
	assert.Equal(t, "#ff0000", s.Color)
	assert.Empty(t, s.RecentColors)
	assert.Equal(t, 1, s.BrushSize)
	assert.True(t, s.Relief.Enabled)
	assert.Equal(t, "HI", s.Text.Content)
	assert.Equal(t, []string{"#ffffff", "#000000"}, s.PalettePresets)

	c.PaletteFile = filepath.Join(dir, "missing.yaml")
	assert.Error(t, c.Apply(project.New()))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"github.com/Masterminds/semver/v3"
)

// FileVersion is the version of the project file format written.
const FileVersion = "3.0.0"

// ErrUnsupportedVersion is returned when importing a project file
// written by a newer major version of the format.
var ErrUnsupportedVersion = errors.New("project: unsupported file version")

// File is the JSON project file format.
type File struct {
	Version        string          `json:"version,omitempty"`
	ProjectName    string          `json:"projectName,omitempty"`
	GridW          int             `json:"gridW"`
	GridH          int             `json:"gridH"`
	MMScale        float32         `json:"mmScale"`
	LayerThickness float32         `json:"layerThickness"`
	BrushSize      int             `json:"brushSize"`
	SymmetryX      bool            `json:"symmetryX"`
	SymmetryY      bool            `json:"symmetryY"`
	PencilOnly     bool            `json:"pencilOnly"`
	Tool           Tools           `json:"tool"`
	Color          string          `json:"color"`
	Layers         []*layers.Layer `json:"layers"`
	ActiveLayerID  string          `json:"activeLayerId"`

	// Pixels is the composited map. It is written for readers that
	// predate layers, and read only when a file has no layers.
	Pixels layers.Pixels `json:"pixels,omitempty"`

	Relief         Relief   `json:"relief"`
	Text           Text     `json:"text"`
	Hanger         Hanger   `json:"hanger"`
	RecentColors   []string `json:"recentColors"`
	PalettePresets []string `json:"palettePresets"`

	// UpdatedAt is the time of the last save, in Unix milliseconds.
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// File returns the file form of the state. Layers are deep copies.
func (s *State) File() *File {
	lys := s.Layers.Layers()
	for i, ly := range lys {
		lys[i] = ly.Clone()
	}
	return &File{
		Version:        FileVersion,
		ProjectName:    s.FileName(),
		GridW:          s.GridW,
		GridH:          s.GridH,
		MMScale:        s.MMScale,
		LayerThickness: s.LayerThickness,
		BrushSize:      s.BrushSize,
		SymmetryX:      s.SymmetryX,
		SymmetryY:      s.SymmetryY,
		PencilOnly:     s.PencilOnly,
		Tool:           s.Tool,
		Color:          s.Color,
		Layers:         lys,
		ActiveLayerID:  s.Layers.ActiveID(),
		Pixels:         s.Composite().Clone(),
		Relief:         s.Relief,
		Text:           s.Text,
		Hanger:         s.Hanger,
		RecentColors:   slices.Clone(s.RecentColors),
		PalettePresets: slices.Clone(s.PalettePresets),
	}
}

// MarshalJSON implements [json.Marshaler] using the [File] format.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.File())
}

// Import replaces the state with the project in the given JSON data.
// Missing numeric settings (or zero ones) fall back to their defaults,
// and other missing fields keep their current values. A file with no
// layers but a top-level pixels map is imported as a single layer.
// The project name falls back to fallbackName. On error, the state is
// left unchanged. The selection is always cleared.
func (s *State) Import(data []byte, fallbackName string) error {
	base := s.File()
	base.Version = ""
	base.ProjectName = ""
	base.GridW, base.GridH = 0, 0
	base.MMScale, base.LayerThickness, base.BrushSize = 0, 0, 0
	base.SymmetryX, base.SymmetryY, base.PencilOnly = false, false, false
	base.Layers = nil
	base.ActiveLayerID = ""
	base.Pixels = nil
	// decoding over the current values keeps any field the file omits
	if err := json.Unmarshal(data, base); err != nil {
		return fmt.Errorf("project: invalid project file: %w", err)
	}
	if base.Version != "" {
		v, err := semver.NewVersion(base.Version)
		if err != nil {
			return fmt.Errorf("project: invalid file version %q: %w", base.Version, err)
		}
		cur := semver.MustParse(FileVersion)
		if v.Major() > cur.Major() {
			return fmt.Errorf("%w: %s (newest supported is %d.x)", ErrUnsupportedVersion, v, cur.Major())
		}
	}
	n := s.Clone()
	if base.ProjectName == "" {
		base.ProjectName = fallbackName
	}
	n.applyFile(base)
	*s = *n
	return nil
}

// applyFile sets the state from the decoded file, applying defaults.
func (s *State) applyFile(f *File) {
	s.Name = CleanName(f.ProjectName)
	s.GridW = positive(f.GridW, DefaultGridSize)
	s.GridH = positive(f.GridH, DefaultGridSize)
	s.MMScale = positive(f.MMScale, 1)
	s.LayerThickness = positive(f.LayerThickness, 1)
	s.BrushSize = positive(f.BrushSize, 1)
	s.SymmetryX, s.SymmetryY, s.PencilOnly = f.SymmetryX, f.SymmetryY, f.PencilOnly
	if f.Tool.IsValid() {
		s.Tool = f.Tool
	}
	s.Color = normalColor(f.Color, s.Color)

	lys := slices.DeleteFunc(f.Layers, func(ly *layers.Layer) bool { return ly == nil })
	if len(lys) == 0 {
		ly := layers.New("Layer 1")
		ly.SetPixels(f.Pixels)
		lys = []*layers.Layer{ly}
	}
	size := s.Size()
	for _, ly := range lys {
		clean := layers.Pixels{}
		ly.Range(func(k grid.Key, c string) bool {
			nc, err := colors.Normalize(c)
			switch {
			case err != nil:
				slog.Warn("project: dropping pixel with invalid color", "layer", ly.Name, "pixel", k, "color", c)
			case !size.Contains(k):
				slog.Debug("project: dropping pixel outside the grid", "layer", ly.Name, "pixel", k)
			default:
				clean[k] = nc
			}
			return true
		})
		ly.SetPixels(clean)
	}
	s.Layers = layers.FromLayers(lys, f.ActiveLayerID)
	s.Selection = nil

	s.Relief = f.Relief
	s.Relief.Normalize()
	s.Text = f.Text
	s.Text.Normalize()
	s.Hanger = f.Hanger
	s.Hanger.Normalize()

	s.RecentColors = validColors(f.RecentColors)
	if len(s.RecentColors) > colors.MaxRecent {
		s.RecentColors = s.RecentColors[:colors.MaxRecent]
	}
	s.PalettePresets = validColors(f.PalettePresets)
	if len(s.PalettePresets) == 0 {
		s.PalettePresets = colors.DefaultPalette()
	}
}

// validColors returns the normalized valid colors, without duplicates.
func validColors(cs []string) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		n, err := colors.Normalize(c)
		if err != nil || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func positive[T int | float32](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

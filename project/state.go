// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project provides the project state of the pixel editor: grid
// dimensions, the layer stack, tool parameters, decorative features and
// colors, together with its JSON file format and the draft recovery store.
package project

import (
	"slices"
	"strings"

	"cogentcore.org/pixelstudio/brush"
	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"golang.org/x/text/unicode/norm"
)

// Tools are the editing tools.
type Tools string

const (
	Draw   Tools = "draw"
	Erase  Tools = "erase"
	Fill   Tools = "fill"
	Line   Tools = "line"
	Rect   Tools = "rect"
	Circle Tools = "circle"
	Select Tools = "select"
)

// IsValid returns whether the tool is a known one.
func (t Tools) IsValid() bool {
	switch t {
	case Draw, Erase, Fill, Line, Rect, Circle, Select:
		return true
	}
	return false
}

// IsShape returns whether the tool paints a drag-defined shape on release.
func (t Tools) IsShape() bool {
	return t == Line || t == Rect || t == Circle
}

// Shape returns the brush shape of a shape tool.
func (t Tools) Shape() brush.Shapes {
	switch t {
	case Rect:
		return brush.Rectangle
	case Circle:
		return brush.Circle
	}
	return brush.Line
}

// Defaults for a new project.
const (
	DefaultGridSize = 16
	DefaultColor    = "#3b82f6"
	DefaultName     = "Untitled"
)

// State is the complete state of one project. It is owned by a single
// editor; there is no package-level state.
type State struct {

	// Name is the project name, used for export file names.
	Name string

	// GridW is the grid width, in cells.
	GridW int

	// GridH is the grid height, in cells.
	GridH int

	// MMScale is the physical size of one cell, in mm.
	MMScale float32

	// LayerThickness is the height of the pixel boxes, in mm.
	LayerThickness float32

	// BrushSize is the side of the square brush footprint, in cells.
	BrushSize int

	// SymmetryX mirrors paint across the vertical midline.
	SymmetryX bool

	// SymmetryY mirrors paint across the horizontal midline.
	SymmetryY bool

	// PencilOnly only accepts pen input for drawing.
	PencilOnly bool

	// Tool is the current tool.
	Tool Tools

	// Color is the current "#rrggbb" paint color.
	Color string

	// Layers is the layer stack.
	Layers *layers.Stack

	// Selection is the current selection, if any. It is not persisted.
	Selection *grid.Rect

	// Clipboard is the last copied block, keyed by absolute position.
	// It is not persisted.
	Clipboard layers.Pixels

	Relief Relief
	Text   Text
	Hanger Hanger

	// RecentColors are the most recently used colors, newest first.
	RecentColors []string

	// PalettePresets are the palette swatches.
	PalettePresets []string
}

// New returns a new project with default settings and a single empty layer.
func New() *State {
	return &State{
		Name:           DefaultName,
		GridW:          DefaultGridSize,
		GridH:          DefaultGridSize,
		MMScale:        1,
		LayerThickness: 1,
		BrushSize:      1,
		Tool:           Draw,
		Color:          DefaultColor,
		Layers:         layers.NewStack(),
		Relief:         DefaultRelief(),
		Text:           DefaultText(),
		Hanger:         DefaultHanger(),
		RecentColors:   []string{},
		PalettePresets: colors.DefaultPalette(),
	}
}

// NewWithCenter returns a new project with one pixel of the default
// color at the grid center, as shown when there is no draft to restore.
func NewWithCenter() *State {
	s := New()
	s.Layers.Active().Set(grid.K(s.GridW/2, s.GridH/2), s.Color)
	return s
}

// Size returns the grid size.
func (s *State) Size() grid.Size {
	return grid.Size{W: s.GridW, H: s.GridH}
}

// Brush returns the brush for the current brush settings.
func (s *State) Brush() *brush.Brush {
	return &brush.Brush{Size: s.BrushSize, SymmetryX: s.SymmetryX, SymmetryY: s.SymmetryY, Grid: s.Size()}
}

// Composite returns the composited pixel map of the visible layers.
func (s *State) Composite() layers.Pixels {
	return s.Layers.Composite()
}

// FileName returns the project name for export file names:
// the trimmed name, or [DefaultName] if it is empty.
func (s *State) FileName() string {
	return CleanName(s.Name)
}

// CleanName trims the given name, puts it in Unicode normal form C,
// and returns [DefaultName] if it is empty.
func CleanName(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return DefaultName
	}
	return name
}

// Resize sets the grid size and clears every layer. Non-positive
// sizes are ignored.
func (s *State) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	s.GridW, s.GridH = w, h
	for _, ly := range s.Layers.Layers() {
		ly.Clear()
	}
	s.Selection = nil
	return true
}

// UseColor makes the given color current and pushes it to the recent
// colors. It returns false if the color is invalid.
func (s *State) UseColor(hex string) bool {
	c, err := colors.Normalize(hex)
	if err != nil {
		return false
	}
	s.Color = c
	s.RecentColors = colors.PushRecent(s.RecentColors, c)
	return true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	cl := *s
	cl.Layers = s.Layers.Clone()
	if s.Selection != nil {
		sel := *s.Selection
		cl.Selection = &sel
	}
	cl.Clipboard = s.Clipboard.Clone()
	cl.RecentColors = slices.Clone(s.RecentColors)
	cl.PalettePresets = slices.Clone(s.PalettePresets)
	return &cl
}

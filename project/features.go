// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"strings"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/math32"
	"golang.org/x/text/unicode/norm"
)

// Relief adds a smaller cap box on top of every pixel box.
type Relief struct {

	// Enabled is whether caps are emitted.
	Enabled bool `json:"enabled"`

	// Inset is how far each cap is inset from its cell edges, in mm.
	Inset float32 `json:"inset"`

	// Height is the height of each cap, in mm.
	Height float32 `json:"height"`
}

// DefaultRelief returns the default relief settings.
func DefaultRelief() Relief {
	return Relief{Inset: 0.2, Height: 0.5}
}

// Normalize replaces unset values with their defaults.
func (r *Relief) Normalize() {
	d := DefaultRelief()
	if r.Inset <= 0 {
		r.Inset = d.Inset
	}
	if r.Height <= 0 {
		r.Height = d.Height
	}
}

// Resolve returns the relief dimensions for the given cell size and
// layer thickness: the clamped inset and cap height, the cap side
// and the height of the body box under the cap.
func (r Relief) Resolve(mm, thick float32) (inset, height, capSize, bodyH float32) {
	d := DefaultRelief()
	inset, height = r.Inset, r.Height
	if inset == 0 {
		inset = d.Inset
	}
	if height == 0 {
		height = d.Height
	}
	inset = math32.Clamp(inset, 0.05, math32.Max(0.05, mm*0.45))
	height = math32.Clamp(height, 0.05, math32.Max(0.05, thick*0.9))
	capSize = math32.Max(mm*0.1, mm-2*inset)
	bodyH = math32.Max(0.05, thick-height)
	return
}

// Text is a line of extruded text placed on top of the model.
type Text struct {

	// Enabled is whether the text is emitted.
	Enabled bool `json:"enabled"`

	// Content is the text itself.
	Content string `json:"content"`

	// Size is the font size, in mm.
	Size float32 `json:"size"`

	// Thickness is the extrusion depth, in mm.
	Thickness float32 `json:"thickness"`

	// X is the horizontal offset, in grid cells.
	X float32 `json:"x"`

	// Y is the vertical offset, in grid cells.
	Y float32 `json:"y"`

	// Color is the "#rrggbb" text color.
	Color string `json:"color"`
}

// DefaultText returns the default text settings.
func DefaultText() Text {
	return Text{Content: "PIXEL", Size: 8, Thickness: 1, Color: "#ffffff"}
}

// Normalize replaces unset or invalid values with their defaults and
// puts the content in Unicode normal form C.
func (t *Text) Normalize() {
	d := DefaultText()
	t.Content = norm.NFC.String(t.Content)
	if t.Size <= 0 {
		t.Size = d.Size
	}
	if t.Thickness <= 0 {
		t.Thickness = d.Thickness
	}
	t.Color = normalColor(t.Color, d.Color)
}

// HangerStyles are the shapes of the hanger attachment.
type HangerStyles string

const (
	// Ring is a single torus.
	Ring HangerStyles = "ring"

	// DoubleRing is two concentric tori.
	DoubleRing HangerStyles = "double-ring"

	// PixelSquare is an extruded square frame.
	PixelSquare HangerStyles = "pixel-square"

	// PixelDiamond is an extruded square frame rotated 45 degrees.
	PixelDiamond HangerStyles = "pixel-diamond"

	// Heart is an extruded heart outline with a heart-shaped hole.
	Heart HangerStyles = "heart"
)

// HangerStylesValues returns all known hanger styles.
func HangerStylesValues() []HangerStyles {
	return []HangerStyles{Ring, DoubleRing, PixelSquare, PixelDiamond, Heart}
}

// IsValid returns whether the style is a known one.
func (hs HangerStyles) IsValid() bool {
	switch hs {
	case Ring, DoubleRing, PixelSquare, PixelDiamond, Heart:
		return true
	}
	return false
}

// Hanger is the attachment used to hang the printed model.
type Hanger struct {

	// Enabled is whether the hanger is emitted.
	Enabled bool `json:"enabled"`

	// X is the horizontal position relative to the model center, in grid cells.
	X float32 `json:"x"`

	// Y is the vertical position relative to the model center, in grid cells.
	Y float32 `json:"y"`

	// Radius is the outer radius, in mm.
	Radius float32 `json:"radius"`

	// Thickness is the thickness of the ring material, in mm.
	Thickness float32 `json:"thickness"`

	// Color is the "#rrggbb" hanger color.
	Color string `json:"color"`

	// Style is the hanger shape. Unknown styles are projected as [Ring].
	Style HangerStyles `json:"style"`
}

// DefaultHanger returns the default hanger settings.
func DefaultHanger() Hanger {
	return Hanger{Y: -10, Radius: 3, Thickness: 1, Color: "#facc15", Style: Ring}
}

// Normalize replaces unset or invalid values with their defaults.
// An unknown but non-empty style is kept as is.
func (h *Hanger) Normalize() {
	d := DefaultHanger()
	if h.Radius <= 0 {
		h.Radius = d.Radius
	}
	if h.Thickness <= 0 {
		h.Thickness = d.Thickness
	}
	h.Color = normalColor(h.Color, d.Color)
	h.Style = HangerStyles(strings.TrimSpace(string(h.Style)))
	if h.Style == "" {
		h.Style = d.Style
	}
}

// normalColor returns the normalized color, or def if it is invalid.
func normalColor(c, def string) string {
	n, err := colors.Normalize(c)
	if err != nil {
		return def
	}
	return n
}

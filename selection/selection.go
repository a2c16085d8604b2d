// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection implements the rectangular selection transforms:
// cloning, clearing and pasting blocks of pixels, interactive moves,
// nearest-neighbor scaling, clockwise rotation and copying a selection
// onto a new layer. Pasted cells that land outside the grid are dropped.
package selection

import (
	"math"

	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
)

// Clone returns the painted cells of the layer inside the selection,
// keyed by absolute grid position.
func Clone(ly *layers.Layer, sel grid.Rect) layers.Pixels {
	out := layers.Pixels{}
	if ly == nil {
		return out
	}
	sel.Cells(func(k grid.Key) {
		if c, ok := ly.Get(k); ok {
			out[k] = c
		}
	})
	return out
}

// CloneRelative returns the painted cells of the layer inside the
// selection, keyed relative to the selection's top-left corner.
func CloneRelative(ly *layers.Layer, sel grid.Rect) layers.Pixels {
	o := sel.Origin()
	out := layers.Pixels{}
	for k, c := range Clone(ly, sel) {
		out[k.Add(-o.X, -o.Y)] = c
	}
	return out
}

// Clear deletes every cell of the layer inside the selection.
func Clear(ly *layers.Layer, sel grid.Rect) {
	sel.Cells(ly.Delete)
}

// Paste writes the block into the layer offset by dx, dy, skipping
// cells outside the grid.
func Paste(ly *layers.Layer, block layers.Pixels, dx, dy int, size grid.Size) {
	for k, c := range block {
		nk := k.Add(dx, dy)
		if !size.Contains(nk) {
			continue
		}
		ly.Set(nk, c)
	}
}

func writable(ly *layers.Layer) bool {
	return ly != nil && !ly.Locked
}

// MoveBy moves the selected block by dx, dy and returns the translated
// selection. When duplicate is set the source cells are kept. It returns
// false, leaving everything unchanged, if the layer is locked or nil.
func MoveBy(ly *layers.Layer, sel grid.Rect, dx, dy int, duplicate bool, size grid.Size) (grid.Rect, bool) {
	if !writable(ly) {
		return sel, false
	}
	sel = sel.Normalize()
	block := Clone(ly, sel)
	if !duplicate {
		Clear(ly, sel)
	}
	Paste(ly, block, dx, dy, size)
	return sel.Translate(dx, dy), true
}

// Scale resizes the selected block by the given factor with
// nearest-neighbor sampling, anchored at the selection's top-left
// corner, and returns the resized selection. Each side becomes
// max(1, round(side*factor)) and destination index i samples source
// index min(side-1, floor(i/factor)). Samples of unpainted cells stay
// unpainted. It returns false if the layer is locked or nil, or the
// factor is not positive.
func Scale(ly *layers.Layer, sel grid.Rect, factor float64, size grid.Size) (grid.Rect, bool) {
	if !writable(ly) || factor <= 0 {
		return sel, false
	}
	sel = sel.Normalize()
	rel := CloneRelative(ly, sel)
	w, h := sel.Width(), sel.Height()
	nw := max(1, int(math.Round(float64(w)*factor)))
	nh := max(1, int(math.Round(float64(h)*factor)))
	scaled := layers.Pixels{}
	for ny := range nh {
		for nx := range nw {
			sx := min(w-1, int(math.Floor(float64(nx)/factor)))
			sy := min(h-1, int(math.Floor(float64(ny)/factor)))
			if c, ok := rel[grid.K(sx, sy)]; ok {
				scaled[grid.K(nx, ny)] = c
			}
		}
	}
	Clear(ly, sel)
	Paste(ly, scaled, sel.X1, sel.Y1, size)
	return grid.R(sel.X1, sel.Y1, sel.X1+nw-1, sel.Y1+nh-1), true
}

// RotateCW rotates the selected block 90 degrees clockwise about its
// top-left corner, mapping relative (x, y) to (height-1-y, x), and
// returns the selection with width and height swapped. It returns
// false if the layer is locked or nil.
func RotateCW(ly *layers.Layer, sel grid.Rect, size grid.Size) (grid.Rect, bool) {
	if !writable(ly) {
		return sel, false
	}
	sel = sel.Normalize()
	rel := CloneRelative(ly, sel)
	w, h := sel.Width(), sel.Height()
	rotated := make(layers.Pixels, len(rel))
	for k, c := range rel {
		rotated[grid.K(h-1-k.Y, k.X)] = c
	}
	Clear(ly, sel)
	Paste(ly, rotated, sel.X1, sel.Y1, size)
	return grid.R(sel.X1, sel.Y1, sel.X1+h-1, sel.Y1+w-1), true
}

// ToNewLayer copies the selected block of the active layer onto a new
// layer appended to the stack and made active. The source is unchanged.
// The block is copied even from a locked layer.
func ToNewLayer(st *layers.Stack, sel grid.Rect) *layers.Layer {
	block := Clone(st.Active(), sel)
	ly := st.Add("")
	ly.SetPixels(block)
	return ly
}

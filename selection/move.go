// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
)

// Move is an interactive drag of a selected block. The block content
// is captured once when the drag starts; every drag frame clears the
// area the block currently occupies and repastes the captured content
// at the total drag offset.
type Move struct {

	// Base is the captured block, keyed by absolute position at drag start.
	Base layers.Pixels

	// Start is the grid position where the drag started.
	Start grid.Key

	// Origin is the normalized selection at drag start.
	Origin grid.Rect

	// Current is the selection after the latest drag frame.
	Current grid.Rect

	// Moved is whether any drag frame has modified the layer.
	Moved bool
}

// BeginMove starts a move of the selected block at the given pointer position.
func BeginMove(ly *layers.Layer, sel grid.Rect, start grid.Key) *Move {
	sel = sel.Normalize()
	return &Move{Base: Clone(ly, sel), Start: start, Origin: sel, Current: sel}
}

// Drag moves the block so that it is offset from its origin by the
// distance from the drag start to pos, and returns the new selection.
// It returns false, leaving the layer unchanged, if the layer is locked or nil.
func (mv *Move) Drag(ly *layers.Layer, pos grid.Key, size grid.Size) (grid.Rect, bool) {
	if !writable(ly) {
		return mv.Current, false
	}
	dx, dy := pos.X-mv.Start.X, pos.Y-mv.Start.Y
	Clear(ly, mv.Current)
	Paste(ly, mv.Base, dx, dy, size)
	mv.Current = mv.Origin.Translate(dx, dy)
	mv.Moved = true
	return mv.Current, true
}

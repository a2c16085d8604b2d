// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brush rasterizes paint operations onto a single layer:
// symmetric square brush stamps, lines, rectangle outlines, circles
// and flood fill. All operations silently skip out-of-bounds cells
// and are no-ops on locked layers.
package brush

import (
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
)

// Brush holds the brush parameters that apply to every stamp.
type Brush struct {

	// Size is the side of the square footprint, in cells.
	// Values below 1 are treated as 1.
	Size int

	// SymmetryX mirrors every stamp across the vertical midline.
	SymmetryX bool

	// SymmetryY mirrors every stamp across the horizontal midline.
	SymmetryY bool

	// Grid is the size of the grid being painted.
	Grid grid.Size
}

// Radius returns the footprint radius, floor(size/2).
func (b *Brush) Radius() int {
	return max(1, b.Size) / 2
}

// Points returns the in-bounds symmetric counterparts of the given center.
func (b *Brush) Points(c grid.Key) []grid.Key {
	return b.Grid.Mirror(c, b.SymmetryX, b.SymmetryY)
}

// Footprint calls fun for every in-bounds cell covered by one stamp at the
// given center, including all symmetric counterparts. A cell may be
// visited more than once when mirrored footprints overlap.
func (b *Brush) Footprint(c grid.Key, fun func(k grid.Key)) {
	r := b.Radius()
	for _, p := range b.Points(c) {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				k := p.Add(dx, dy)
				if !b.Grid.Contains(k) {
					continue
				}
				fun(k)
			}
		}
	}
}

// writable returns whether the layer accepts paint.
func writable(ly *layers.Layer) bool {
	return ly != nil && !ly.Locked
}

// Stamp paints (or erases, if erase is set) one stamp at the given center.
// It returns false if the layer is locked or nil.
func (b *Brush) Stamp(ly *layers.Layer, c grid.Key, color string, erase bool) bool {
	return b.Stroke(ly, []grid.Key{c}, color, erase)
}

// Stroke stamps at every given center, in order.
// It returns false if the layer is locked or nil.
func (b *Brush) Stroke(ly *layers.Layer, centers []grid.Key, color string, erase bool) bool {
	if !writable(ly) {
		return false
	}
	for _, c := range centers {
		b.Footprint(c, func(k grid.Key) {
			if erase {
				ly.Delete(k)
			} else {
				ly.Set(k, color)
			}
		})
	}
	return true
}

// Cells returns the distinct cells a stroke through the given centers
// would touch, in first-touched order. It is used for shape previews.
func (b *Brush) Cells(centers []grid.Key) []grid.Key {
	seen := map[grid.Key]bool{}
	var out []grid.Key
	for _, c := range centers {
		b.Footprint(c, func(k grid.Key) {
			if seen[k] {
				return
			}
			seen[k] = true
			out = append(out, k)
		})
	}
	return out
}

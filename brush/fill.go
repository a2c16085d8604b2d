// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
)

// empty is the color of an unpainted cell during flood fill.
// It is distinct from every hex color, so empty cells form
// their own fillable region.
const empty = "__EMPTY__"

func colorAt(ly *layers.Layer, k grid.Key) string {
	if c, ok := ly.Get(k); ok {
		return c
	}
	return empty
}

// Fill flood fills the 4-connected region of the clicked cell with the
// given color. The source color is taken at the clicked cell; with
// symmetry on, every symmetric counterpart of the click seeds its own
// independent fill of that source color. It returns false if the layer
// is locked or nil, or if the source color already equals the fill color.
// The brush size does not apply.
func (b *Brush) Fill(ly *layers.Layer, seed grid.Key, color string) bool {
	if !writable(ly) {
		return false
	}
	old := colorAt(ly, seed)
	if old == color {
		return false
	}
	for _, s := range b.Points(seed) {
		b.fillFrom(ly, s, old, color)
	}
	return true
}

func (b *Brush) fillFrom(ly *layers.Layer, seed grid.Key, old, color string) {
	stack := []grid.Key{seed}
	visited := map[grid.Key]bool{}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !b.Grid.Contains(k) || visited[k] {
			continue
		}
		visited[k] = true
		if colorAt(ly, k) != old {
			continue
		}
		ly.Set(k, color)
		stack = append(stack, k.Add(1, 0), k.Add(-1, 0), k.Add(0, 1), k.Add(0, -1))
	}
}

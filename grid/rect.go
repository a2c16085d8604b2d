// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// Rect is a rectangular selection defined by two corner cells,
// both inclusive. The corners are stored as given (the second corner
// follows the pointer while dragging), so consumers must call
// [Rect.Normalize] before iterating.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// R returns a new [Rect] from the given corners.
func R(x1, y1, x2, y2 int) Rect {
	return Rect{x1, y1, x2, y2}
}

// Normalize returns the rectangle with X1 <= X2 and Y1 <= Y2.
// It is idempotent.
func (r Rect) Normalize() Rect {
	return Rect{min(r.X1, r.X2), min(r.Y1, r.Y2), max(r.X1, r.X2), max(r.Y1, r.Y2)}
}

// Width returns the number of columns spanned by the rectangle.
func (r Rect) Width() int {
	n := r.Normalize()
	return n.X2 - n.X1 + 1
}

// Height returns the number of rows spanned by the rectangle.
func (r Rect) Height() int {
	n := r.Normalize()
	return n.Y2 - n.Y1 + 1
}

// Contains returns whether the given cell lies inside the rectangle.
func (r Rect) Contains(k Key) bool {
	n := r.Normalize()
	return k.X >= n.X1 && k.X <= n.X2 && k.Y >= n.Y1 && k.Y <= n.Y2
}

// Translate returns the normalized rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	n := r.Normalize()
	return Rect{n.X1 + dx, n.Y1 + dy, n.X2 + dx, n.Y2 + dy}
}

// Origin returns the top-left corner of the normalized rectangle.
func (r Rect) Origin() Key {
	n := r.Normalize()
	return Key{n.X1, n.Y1}
}

// Cells calls the given function for every cell of the normalized
// rectangle, row by row.
func (r Rect) Cells(fun func(k Key)) {
	n := r.Normalize()
	for y := n.Y1; y <= n.Y2; y++ {
		for x := n.X1; x <= n.X2; x++ {
			fun(Key{x, y})
		}
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/math32"
)

// Shapes are the drag-defined shapes.
type Shapes int32

const (
	// Line is a Bresenham line between the two drag points.
	Line Shapes = iota

	// Rectangle is the outline of the box spanned by the two drag points.
	Rectangle

	// Circle is a midpoint circle around the first drag point through the second.
	Circle
)

// Centers returns the brush centers of the given shape for a drag
// from one point to another.
func (s Shapes) Centers(from, to grid.Key) []grid.Key {
	switch s {
	case Rectangle:
		return RectCenters(from, to)
	case Circle:
		return CircleCenters(from, to)
	}
	return LineCenters(from, to)
}

// LineCenters returns the integer Bresenham line from one point to another,
// both inclusive.
func LineCenters(from, to grid.Key) []grid.Key {
	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	var pts []grid.Key
	for {
		pts = append(pts, grid.K(x0, y0))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return pts
}

// RectCenters returns the outline of the axis-aligned box spanned by the
// two corners: top and bottom edges column by column, then left and right
// edges row by row. Corners appear more than once.
func RectCenters(from, to grid.Key) []grid.Key {
	r := grid.R(from.X, from.Y, to.X, to.Y).Normalize()
	var pts []grid.Key
	for x := r.X1; x <= r.X2; x++ {
		pts = append(pts, grid.K(x, r.Y1), grid.K(x, r.Y2))
	}
	for y := r.Y1; y <= r.Y2; y++ {
		pts = append(pts, grid.K(r.X1, y), grid.K(r.X2, y))
	}
	return pts
}

// CircleRadius returns the circle radius for a drag from center to edge:
// the rounded Euclidean distance, at least 1.
func CircleRadius(center, edge grid.Key) int {
	dx := float32(edge.X - center.X)
	dy := float32(edge.Y - center.Y)
	return max(1, int(math32.Round(math32.Sqrt(dx*dx+dy*dy))))
}

// CircleCenters returns the midpoint circle around center through edge,
// as 8-way symmetric octant points. Points may repeat on the diagonals
// and axes.
func CircleCenters(center, edge grid.Key) []grid.Key {
	r := CircleRadius(center, edge)
	cx, cy := center.X, center.Y
	x, y := r, 0
	err := 1 - r
	var pts []grid.Key
	for x >= y {
		pts = append(pts,
			grid.K(cx+x, cy+y), grid.K(cx+y, cy+x),
			grid.K(cx-y, cy+x), grid.K(cx-x, cy+y),
			grid.K(cx-x, cy-y), grid.K(cx-y, cy-x),
			grid.K(cx+y, cy-x), grid.K(cx+x, cy-y))
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid provides the coordinate primitives of the pixel grid:
// pixel keys with their canonical "x,y" string form, and rectangular
// selections defined by two (not necessarily ordered) corners.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is the address of one grid cell. Its canonical string form is "x,y",
// which is also its JSON map key form.
type Key struct {
	X, Y int
}

// K returns the [Key] for the given coordinates.
func K(x, y int) Key {
	return Key{x, y}
}

// String returns the canonical "x,y" form of the key.
func (k Key) String() string {
	return strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y)
}

// Add returns the key offset by dx, dy.
func (k Key) Add(dx, dy int) Key {
	return Key{k.X + dx, k.Y + dy}
}

// ParseKey parses the canonical "x,y" form of a key.
func ParseKey(s string) (Key, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Key{}, fmt.Errorf("grid.ParseKey: missing comma in %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Key{}, fmt.Errorf("grid.ParseKey: %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Key{}, fmt.Errorf("grid.ParseKey: %q: %w", s, err)
	}
	return Key{x, y}, nil
}

// MarshalText implements [encoding.TextMarshaler], so that keys
// can be used directly as JSON object keys.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key) UnmarshalText(text []byte) error {
	nk, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = nk
	return nil
}

// Size is the width and height of a grid, in cells.
type Size struct {
	W, H int
}

// InBounds returns whether the given cell lies inside a grid of
// width w and height h. Writes outside the grid are silently dropped
// by every editing operation, so this is an inclusion test, not a validation.
func InBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// Contains returns whether the given key lies inside the grid.
func (s Size) Contains(k Key) bool {
	return InBounds(k.X, k.Y, s.W, s.H)
}

// Mirror returns the symmetric counterparts of the given cell for the
// active symmetry axes, in the order original, X-mirrored, Y-mirrored,
// both-mirrored. Duplicates and out-of-bounds points are removed.
// The X mirror of x is w-1-x and the Y mirror of y is h-1-y.
func (s Size) Mirror(k Key, symX, symY bool) []Key {
	pts := make([]Key, 0, 4)
	pts = append(pts, k)
	if symX {
		pts = append(pts, Key{s.W - 1 - k.X, k.Y})
	}
	if symY {
		pts = append(pts, Key{k.X, s.H - 1 - k.Y})
	}
	if symX && symY {
		pts = append(pts, Key{s.W - 1 - k.X, s.H - 1 - k.Y})
	}
	out := pts[:0]
	for i, p := range pts {
		dup := false
		for _, q := range pts[:i] {
			if q == p {
				dup = true
				break
			}
		}
		if dup || !s.Contains(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

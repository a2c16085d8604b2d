// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layers provides the ordered stack of paint layers. Each layer
// owns a sparse map from grid cells to hex colors, and the stack
// composites its visible layers into a single flattened map on demand.
package layers

import (
	"encoding/json"
	"log/slog"
	"maps"
	"math/rand/v2"
	"strconv"
	"time"

	"cogentcore.org/pixelstudio/grid"
)

// Pixels is a sparse map from grid cells to "#rrggbb" colors.
type Pixels map[grid.Key]string

// Clone returns a copy of the map.
func (p Pixels) Clone() Pixels {
	if p == nil {
		return Pixels{}
	}
	return maps.Clone(p)
}

// UnmarshalJSON implements [json.Unmarshaler]. Entries whose key is not
// a valid "x,y" cell are dropped instead of failing the whole map.
func (p *Pixels) UnmarshalJSON(b []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	px := make(Pixels, len(raw))
	for ks, c := range raw {
		k, err := grid.ParseKey(ks)
		if err != nil {
			slog.Warn("layers: dropping pixel with invalid key", "key", ks, "color", c)
			continue
		}
		px[k] = c
	}
	*p = px
	return nil
}

// Layer is one independently paintable, orderable, visible and lockable
// sparse pixel buffer. Its pixels are only reachable through methods so
// that every write bumps the version the [Stack] composite cache keys on.
type Layer struct {

	// ID is the stable unique identifier of the layer.
	ID string

	// Name is the user-visible name.
	Name string

	// Visible is whether the layer participates in compositing.
	Visible bool

	// Locked layers silently reject all paint operations.
	Locked bool

	pixels  Pixels
	version uint64
}

// New returns a new visible, unlocked, empty layer with a fresh id.
func New(name string) *Layer {
	return &Layer{ID: NewID(), Name: name, Visible: true, pixels: Pixels{}}
}

// NewID returns a new layer id of the form layer_<base36 unix ms>_<4 base36 chars>.
func NewID() string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = digits[rand.IntN(len(digits))]
	}
	return "layer_" + strconv.FormatInt(time.Now().UnixMilli(), 36) + "_" + string(suffix)
}

// Get returns the color at the given cell, if any.
func (ly *Layer) Get(k grid.Key) (string, bool) {
	c, ok := ly.pixels[k]
	return c, ok
}

// Set paints the given cell.
func (ly *Layer) Set(k grid.Key, color string) {
	if ly.pixels == nil {
		ly.pixels = Pixels{}
	}
	if old, ok := ly.pixels[k]; ok && old == color {
		return
	}
	ly.pixels[k] = color
	ly.version++
}

// Delete clears the given cell.
func (ly *Layer) Delete(k grid.Key) {
	if _, ok := ly.pixels[k]; !ok {
		return
	}
	delete(ly.pixels, k)
	ly.version++
}

// Clear removes every pixel.
func (ly *Layer) Clear() {
	if len(ly.pixels) == 0 {
		return
	}
	ly.pixels = Pixels{}
	ly.version++
}

// Len returns the number of painted cells.
func (ly *Layer) Len() int {
	return len(ly.pixels)
}

// Pixels returns a copy of the painted cells.
func (ly *Layer) Pixels() Pixels {
	return ly.pixels.Clone()
}

// SetPixels replaces all painted cells with a copy of the given map.
func (ly *Layer) SetPixels(p Pixels) {
	ly.pixels = p.Clone()
	ly.version++
}

// Range calls fun for every painted cell, in unspecified order,
// until fun returns false.
func (ly *Layer) Range(fun func(k grid.Key, color string) bool) {
	for k, c := range ly.pixels {
		if !fun(k, c) {
			return
		}
	}
}

// Version returns a counter that changes whenever the pixels change.
func (ly *Layer) Version() uint64 {
	return ly.version
}

// Clone returns a deep copy of the layer with the same id.
func (ly *Layer) Clone() *Layer {
	return &Layer{ID: ly.ID, Name: ly.Name, Visible: ly.Visible, Locked: ly.Locked, pixels: ly.pixels.Clone(), version: ly.version}
}

// layerJSON is the project file form of a layer.
type layerJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible *bool  `json:"visible,omitempty"`
	Locked  bool   `json:"locked"`
	Pixels  Pixels `json:"pixels"`
}

// MarshalJSON implements [json.Marshaler].
func (ly *Layer) MarshalJSON() ([]byte, error) {
	vis := ly.Visible
	return json.Marshal(layerJSON{ID: ly.ID, Name: ly.Name, Visible: &vis, Locked: ly.Locked, Pixels: ly.pixels.Clone()})
}

// UnmarshalJSON implements [json.Unmarshaler]. A missing visible flag
// means visible, and a missing id is replaced by a fresh one.
func (ly *Layer) UnmarshalJSON(b []byte) error {
	var lj layerJSON
	if err := json.Unmarshal(b, &lj); err != nil {
		return err
	}
	ly.ID = lj.ID
	if ly.ID == "" {
		ly.ID = NewID()
	}
	ly.Name = lj.Name
	ly.Visible = lj.Visible == nil || *lj.Visible
	ly.Locked = lj.Locked
	ly.pixels = lj.Pixels.Clone()
	ly.version++
	return nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"slices"
	"strconv"
)

// Direction is the direction in which [Stack.Move] moves a layer.
type Direction int32

const (
	// Up moves the layer one step earlier in the list (below in paint order).
	Up Direction = iota

	// Down moves the layer one step later in the list (above in paint order).
	Down
)

// Stack is the ordered collection of layers of a project. Order is paint
// order: later layers are painted on top. A stack always holds at least
// one layer, and its active layer always resolves to a member.
type Stack struct {
	layers []*Layer
	active string

	cache       Pixels
	fingerprint []stamp
}

// stamp is the part of a layer that the composite depends on.
type stamp struct {
	id      string
	visible bool
	version uint64
}

// NewStack returns a stack with a single empty layer named "Layer 1".
func NewStack() *Stack {
	ly := New("Layer 1")
	return &Stack{layers: []*Layer{ly}, active: ly.ID}
}

// FromLayers returns a stack holding the given layers with the given
// active id, which is healed to the first layer if it does not resolve.
// An empty list yields a single new empty layer.
func FromLayers(lys []*Layer, activeID string) *Stack {
	st := &Stack{}
	st.Replace(lys, activeID)
	return st
}

// Replace replaces all layers wholesale, as done when restoring a snapshot.
func (st *Stack) Replace(lys []*Layer, activeID string) {
	st.layers = slices.DeleteFunc(slices.Clone(lys), func(ly *Layer) bool { return ly == nil })
	if len(st.layers) == 0 {
		st.layers = []*Layer{New("Layer 1")}
	}
	st.active = activeID
	st.heal()
	st.invalidate()
}

// Len returns the number of layers.
func (st *Stack) Len() int {
	return len(st.layers)
}

// Layers returns the layers in paint order. The slice is a copy; the
// layers themselves are shared.
func (st *Stack) Layers() []*Layer {
	return slices.Clone(st.layers)
}

// At returns the layer at the given index.
func (st *Stack) At(i int) *Layer {
	return st.layers[i]
}

// IndexOf returns the index of the layer with the given id, or -1.
func (st *Stack) IndexOf(id string) int {
	return slices.IndexFunc(st.layers, func(ly *Layer) bool { return ly.ID == id })
}

// ByID returns the layer with the given id, or nil.
func (st *Stack) ByID(id string) *Layer {
	i := st.IndexOf(id)
	if i < 0 {
		return nil
	}
	return st.layers[i]
}

// heal resets the active id to the first layer if it does not resolve.
func (st *Stack) heal() {
	if st.IndexOf(st.active) < 0 {
		st.active = st.layers[0].ID
	}
}

// Active returns the active layer, healing the active id first.
func (st *Stack) Active() *Layer {
	st.heal()
	return st.ByID(st.active)
}

// ActiveID returns the id of the active layer.
func (st *Stack) ActiveID() string {
	st.heal()
	return st.active
}

// SetActive makes the layer with the given id active.
// It returns false if no such layer exists.
func (st *Stack) SetActive(id string) bool {
	if st.IndexOf(id) < 0 {
		return false
	}
	st.active = id
	return true
}

// Add appends a new layer with the given name and makes it active.
// An empty name yields "Layer N" with N the new layer count.
func (st *Stack) Add(name string) *Layer {
	if name == "" {
		name = "Layer " + strconv.Itoa(len(st.layers)+1)
	}
	ly := New(name)
	st.Append(ly)
	return ly
}

// Append appends the given layer and makes it active.
func (st *Stack) Append(ly *Layer) {
	st.layers = append(st.layers, ly)
	st.active = ly.ID
	st.invalidate()
}

// Delete removes the layer with the given id. It is a no-op returning
// false for the last remaining layer or an unknown id. When the active
// layer is deleted, the layer before it (or the new first layer) becomes active.
func (st *Stack) Delete(id string) bool {
	if len(st.layers) <= 1 {
		return false
	}
	i := st.IndexOf(id)
	if i < 0 {
		return false
	}
	st.layers = slices.Delete(st.layers, i, i+1)
	if st.active == id {
		st.active = st.layers[max(0, i-1)].ID
	}
	st.invalidate()
	return true
}

// Move swaps the layer with the given id with its neighbor in the given
// direction. It is a no-op returning false at the boundary.
func (st *Stack) Move(id string, dir Direction) bool {
	i := st.IndexOf(id)
	if i < 0 {
		return false
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(st.layers) {
		return false
	}
	st.layers[i], st.layers[j] = st.layers[j], st.layers[i]
	st.invalidate()
	return true
}

// SetVisible sets the visibility of the layer with the given id.
func (st *Stack) SetVisible(id string, visible bool) bool {
	ly := st.ByID(id)
	if ly == nil {
		return false
	}
	ly.Visible = visible
	return true
}

// SetLocked sets the locked flag of the layer with the given id.
func (st *Stack) SetLocked(id string, locked bool) bool {
	ly := st.ByID(id)
	if ly == nil {
		return false
	}
	ly.Locked = locked
	return true
}

// Clone returns a deep copy of the stack.
func (st *Stack) Clone() *Stack {
	lys := make([]*Layer, len(st.layers))
	for i, ly := range st.layers {
		lys[i] = ly.Clone()
	}
	return FromLayers(lys, st.active)
}

func (st *Stack) invalidate() {
	st.cache = nil
	st.fingerprint = nil
}

// Composite returns the flattened map of all visible layers, where later
// layers overwrite earlier ones at the same cell. The result is cached
// until any layer changes and must not be modified by the caller.
func (st *Stack) Composite() Pixels {
	if st.cache != nil && slices.Equal(st.fingerprint, st.stamps()) {
		return st.cache
	}
	n := 0
	for _, ly := range st.layers {
		if ly.Visible {
			n += ly.Len()
		}
	}
	out := make(Pixels, n)
	for _, ly := range st.layers {
		if !ly.Visible {
			continue
		}
		for k, c := range ly.pixels {
			out[k] = c
		}
	}
	st.cache = out
	st.fingerprint = st.stamps()
	return out
}

func (st *Stack) stamps() []stamp {
	s := make([]stamp, len(st.layers))
	for i, ly := range st.layers {
		s[i] = stamp{ly.ID, ly.Visible, ly.version}
	}
	return s
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"cogentcore.org/pixelstudio/project"
	"cogentcore.org/pixelstudio/selection"
)

// AddLayer appends a new active layer. An empty name gives "Layer N".
func (ed *Editor) AddLayer(name string) *layers.Layer {
	ed.Cancel()
	ly := ed.State.Layers.Add(name)
	ed.commit("Add layer")
	return ly
}

// DeleteLayer deletes the layer with the given id. It returns false if
// it is the last layer or does not exist.
func (ed *Editor) DeleteLayer(id string) bool {
	ed.Cancel()
	if !ed.State.Layers.Delete(id) {
		return false
	}
	ed.commit("Delete layer")
	return true
}

// MoveLayer swaps the layer with its neighbor in the given direction.
// It returns false at the end of the stack.
func (ed *Editor) MoveLayer(id string, dir layers.Direction) bool {
	ed.Cancel()
	if !ed.State.Layers.Move(id, dir) {
		return false
	}
	ed.commit("Move layer")
	return true
}

// RenameLayer renames the layer with the given id.
func (ed *Editor) RenameLayer(id, name string) bool {
	ly := ed.State.Layers.ByID(id)
	if ly == nil || name == "" || ly.Name == name {
		return false
	}
	ly.Name = name
	ed.commit("Rename layer")
	return true
}

// SetLayerVisible shows or hides the layer with the given id.
func (ed *Editor) SetLayerVisible(id string, visible bool) bool {
	if !ed.State.Layers.SetVisible(id, visible) {
		return false
	}
	ed.changed()
	return true
}

// SetLayerLocked locks or unlocks the layer with the given id.
func (ed *Editor) SetLayerLocked(id string, locked bool) bool {
	if !ed.State.Layers.SetLocked(id, locked) {
		return false
	}
	ed.Drafts.Save(ed.State)
	return true
}

// SetActiveLayer makes the layer with the given id active.
func (ed *Editor) SetActiveLayer(id string) bool {
	ed.Cancel()
	if !ed.State.Layers.SetActive(id) {
		return false
	}
	ed.Drafts.Save(ed.State)
	return true
}

// SetTool switches the current tool, canceling any interaction.
// Switching away from the select tool clears the selection.
func (ed *Editor) SetTool(t project.Tools) bool {
	if !t.IsValid() {
		return false
	}
	ed.Cancel()
	if t != project.Select {
		ed.State.Selection = nil
	}
	ed.State.Tool = t
	ed.Drafts.Save(ed.State)
	return true
}

// SetColor makes the given hex color current and pushes it to the
// recent colors. It returns false for an invalid color.
func (ed *Editor) SetColor(hex string) bool {
	if !ed.State.UseColor(hex) {
		return false
	}
	ed.Drafts.Save(ed.State)
	return true
}

// SetPalette replaces the palette presets. Invalid colors are dropped.
func (ed *Editor) SetPalette(presets []string) {
	var pal []string
	for _, c := range presets {
		if n, err := colors.Normalize(c); err == nil {
			pal = append(pal, n)
		}
	}
	ed.State.PalettePresets = pal
	ed.Drafts.Save(ed.State)
}

// Resize sets the grid size, clearing every layer.
// It returns false for non-positive sizes.
func (ed *Editor) Resize(w, h int) bool {
	ed.Cancel()
	if !ed.State.Resize(w, h) {
		return false
	}
	ed.commit("Resize")
	return true
}

// SetName sets the project name.
func (ed *Editor) SetName(name string) {
	ed.State.Name = project.CleanName(name)
	ed.Drafts.Save(ed.State)
}

// SetMMScale sets the physical size of a cell. Non-positive values are ignored.
func (ed *Editor) SetMMScale(mm float32) bool {
	if mm <= 0 {
		return false
	}
	ed.State.MMScale = mm
	ed.changed()
	return true
}

// SetLayerThickness sets the pixel box height. Non-positive values are ignored.
func (ed *Editor) SetLayerThickness(t float32) bool {
	if t <= 0 {
		return false
	}
	ed.State.LayerThickness = t
	ed.changed()
	return true
}

// SetBrushSize sets the brush size. Values below 1 are ignored.
func (ed *Editor) SetBrushSize(size int) bool {
	if size < 1 {
		return false
	}
	ed.State.BrushSize = size
	ed.Drafts.Save(ed.State)
	return true
}

// SetSymmetry sets the mirror axes of the brush.
func (ed *Editor) SetSymmetry(x, y bool) {
	ed.State.SymmetryX, ed.State.SymmetryY = x, y
	ed.Drafts.Save(ed.State)
}

// SetPencilOnly sets whether only pen input draws.
func (ed *Editor) SetPencilOnly(on bool) {
	ed.State.PencilOnly = on
	ed.Drafts.Save(ed.State)
}

// SetRelief sets the relief settings, normalizing them.
func (ed *Editor) SetRelief(r project.Relief) {
	r.Normalize()
	ed.State.Relief = r
	ed.changed()
}

// SetText sets the text settings, normalizing them.
func (ed *Editor) SetText(t project.Text) {
	t.Normalize()
	ed.State.Text = t
	ed.changed()
}

// SetHanger sets the hanger settings, normalizing them.
func (ed *Editor) SetHanger(h project.Hanger) {
	h.Normalize()
	ed.State.Hanger = h
	ed.changed()
}

// Select sets the selection to the given rectangle, switching to the
// select tool.
func (ed *Editor) Select(r grid.Rect) {
	ed.Cancel()
	ed.State.Tool = project.Select
	r = r.Normalize()
	ed.State.Selection = &r
}

// ClearSelection removes the selection.
func (ed *Editor) ClearSelection() {
	ed.Cancel()
	ed.State.Selection = nil
}

// selected returns the active layer and the selection, or false if
// there is no selection or no interaction can start.
func (ed *Editor) selected() (*layers.Layer, grid.Rect, bool) {
	ed.Cancel()
	s := ed.State
	if s.Selection == nil {
		return nil, grid.Rect{}, false
	}
	return s.Layers.Active(), *s.Selection, true
}

// transform applies a selection transform and commits it.
func (ed *Editor) transform(action string, fun func(ly *layers.Layer, sel grid.Rect) (grid.Rect, bool)) bool {
	ly, sel, ok := ed.selected()
	if !ok {
		return false
	}
	nsel, ok := fun(ly, sel)
	if !ok {
		return false
	}
	ed.State.Selection = &nsel
	ed.commit(action)
	return true
}

// CopySelection copies the selected block to the clipboard and pastes
// a duplicate offset by one cell down and right, selecting it.
func (ed *Editor) CopySelection() bool {
	ly, sel, ok := ed.selected()
	if !ok || ly == nil {
		return false
	}
	ed.State.Clipboard = selection.Clone(ly, sel)
	return ed.transform("Copy selection", func(ly *layers.Layer, sel grid.Rect) (grid.Rect, bool) {
		return selection.MoveBy(ly, sel, 1, 1, true, ed.State.Size())
	})
}

// MoveSelection moves the selected block by dx, dy.
func (ed *Editor) MoveSelection(dx, dy int) bool {
	return ed.transform("Move selection", func(ly *layers.Layer, sel grid.Rect) (grid.Rect, bool) {
		return selection.MoveBy(ly, sel, dx, dy, false, ed.State.Size())
	})
}

// PasteClipboard pastes the clipboard at its original position offset
// by dx, dy, selecting the pasted block.
func (ed *Editor) PasteClipboard(dx, dy int) bool {
	ed.Cancel()
	s := ed.State
	ly := s.Layers.Active()
	if len(s.Clipboard) == 0 || ly == nil || ly.Locked {
		return false
	}
	selection.Paste(ly, s.Clipboard, dx, dy, s.Size())
	first := true
	var r grid.Rect
	for k := range s.Clipboard {
		if first {
			r, first = grid.R(k.X, k.Y, k.X, k.Y), false
			continue
		}
		r = grid.R(min(r.X1, k.X), min(r.Y1, k.Y), max(r.X2, k.X), max(r.Y2, k.Y))
	}
	r = r.Translate(dx, dy)
	s.Tool = project.Select
	s.Selection = &r
	ed.commit("Paste")
	return true
}

// ScaleSelection resizes the selected block by the given factor.
func (ed *Editor) ScaleSelection(factor float64) bool {
	return ed.transform("Scale selection", func(ly *layers.Layer, sel grid.Rect) (grid.Rect, bool) {
		return selection.Scale(ly, sel, factor, ed.State.Size())
	})
}

// RotateSelection rotates the selected block 90 degrees clockwise.
func (ed *Editor) RotateSelection() bool {
	return ed.transform("Rotate selection", func(ly *layers.Layer, sel grid.Rect) (grid.Rect, bool) {
		return selection.RotateCW(ly, sel, ed.State.Size())
	})
}

// SelectionToNewLayer copies the selected block onto a new active layer.
func (ed *Editor) SelectionToNewLayer() *layers.Layer {
	ly, sel, ok := ed.selected()
	if !ok || ly == nil {
		return nil
	}
	nl := selection.ToNewLayer(ed.State.Layers, sel)
	ed.commit("Selection to layer")
	return nl
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"cogentcore.org/pixelstudio/brush"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/project"
	"cogentcore.org/pixelstudio/selection"
)

// Modes are the states of the pointer interaction.
type Modes int32

const (
	// Idle is no interaction in progress.
	Idle Modes = iota

	// Drawing is a draw or erase stroke.
	Drawing

	// Shaping is a line, rectangle or circle drag, painted on release.
	Shaping

	// Selecting is a drag defining a new selection.
	Selecting

	// Moving is a drag moving the selected block.
	Moving
)

var modeNames = [...]string{"Idle", "Drawing", "Shaping", "Selecting", "Moving"}

func (m Modes) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Modes(?)"
	}
	return modeNames[m]
}

// PointerTypes are the kinds of pointing devices.
type PointerTypes string

const (
	Mouse PointerTypes = "mouse"
	Pen   PointerTypes = "pen"
	Touch PointerTypes = "touch"
)

// PointerEvent is one pointer event, already converted to grid cells.
type PointerEvent struct {

	// ID identifies the pointer across the events of one drag.
	ID int

	// Type is the kind of device.
	Type PointerTypes

	// Primary is whether this is the primary pointer of its type.
	Primary bool

	// Pos is the grid cell under the pointer. It may be outside the grid.
	Pos grid.Key
}

// pointer is the state of the current interaction.
type pointer struct {
	mode  Modes
	id    int
	start grid.Key
	last  grid.Key

	// version is the active layer version when the interaction started.
	version uint64

	move *selection.Move
}

// Mode returns the current interaction mode.
func (ed *Editor) Mode() Modes {
	return ed.ptr.mode
}

// accepts returns whether the event belongs to the current interaction.
func (ed *Editor) accepts(e PointerEvent) bool {
	return ed.ptr.mode != Idle && e.ID == ed.ptr.id
}

func (ed *Editor) activeVersion() uint64 {
	if ly := ed.State.Layers.Active(); ly != nil {
		return ly.Version()
	}
	return 0
}

// PointerDown starts an interaction with the current tool. Events of
// non-primary pointers, events during another interaction, events
// outside the grid (except for shape tools, whose clipped shapes may
// start off the canvas) and, in pencil-only mode, non-pen events are
// ignored. It returns whether the event was handled.
func (ed *Editor) PointerDown(e PointerEvent) bool {
	s := ed.State
	switch {
	case ed.ptr.mode != Idle, !e.Primary:
		return false
	case s.PencilOnly && e.Type != Pen:
		return false
	case !s.Tool.IsShape() && !s.Size().Contains(e.Pos):
		return false
	}
	ed.ptr = pointer{id: e.ID, start: e.Pos, last: e.Pos, version: ed.activeVersion()}
	ly := s.Layers.Active()
	switch {
	case s.Tool == project.Fill:
		if s.Brush().Fill(ly, e.Pos, s.Color) {
			ed.commit("Fill")
		}
		ed.ptr = pointer{}
	case s.Tool.IsShape():
		ed.ptr.mode = Shaping
	case s.Tool == project.Select:
		if s.Selection != nil && s.Selection.Normalize().Contains(e.Pos) {
			ed.ptr.mode = Moving
			ed.ptr.move = selection.BeginMove(ly, *s.Selection, e.Pos)
			break
		}
		ed.ptr.mode = Selecting
		sel := grid.R(e.Pos.X, e.Pos.Y, e.Pos.X, e.Pos.Y)
		s.Selection = &sel
	default:
		ed.ptr.mode = Drawing
		s.Brush().Stamp(ly, e.Pos, s.Color, s.Tool == project.Erase)
	}
	return true
}

// PointerMove continues the current interaction. Draw and erase
// strokes paint along the line from the previous position, so that
// fast drags leave no gaps. It returns whether the event was handled.
func (ed *Editor) PointerMove(e PointerEvent) bool {
	if !ed.accepts(e) {
		return false
	}
	s := ed.State
	ly := s.Layers.Active()
	switch ed.ptr.mode {
	case Drawing:
		if e.Pos == ed.ptr.last {
			return true
		}
		centers := brush.LineCenters(ed.ptr.last, e.Pos)
		s.Brush().Stroke(ly, centers[1:], s.Color, s.Tool == project.Erase)
	case Selecting:
		s.Selection.X2, s.Selection.Y2 = e.Pos.X, e.Pos.Y
	case Moving:
		if sel, ok := ed.ptr.move.Drag(ly, e.Pos, s.Size()); ok {
			s.Selection = &sel
		}
	}
	ed.ptr.last = e.Pos
	return true
}

// PointerUp completes the current interaction, committing it to the
// history if it changed the project. It returns whether the event was
// handled.
func (ed *Editor) PointerUp(e PointerEvent) bool {
	if !ed.accepts(e) {
		return false
	}
	s := ed.State
	ptr := ed.ptr
	ed.ptr = pointer{}
	ly := s.Layers.Active()
	changed := func() bool {
		return ed.activeVersion() != ptr.version
	}
	switch ptr.mode {
	case Drawing:
		if changed() {
			if s.Tool == project.Erase {
				ed.commit("Erase")
			} else {
				ed.commit("Draw")
			}
		}
	case Shaping:
		centers := s.Tool.Shape().Centers(ptr.start, e.Pos)
		if s.Brush().Stroke(ly, centers, s.Color, false) && changed() {
			ed.commit("Draw " + string(s.Tool))
		}
	case Selecting:
		sel := s.Selection.Normalize()
		s.Selection = &sel
	case Moving:
		if ptr.move.Moved {
			ed.commit("Move selection")
		}
	}
	return true
}

// Cancel aborts the current interaction. Any change it made to the
// project is rolled back to the last committed state.
func (ed *Editor) Cancel() {
	ptr := ed.ptr
	ed.ptr = pointer{}
	switch ptr.mode {
	case Idle:
		return
	case Selecting:
		ed.State.Selection = nil
		return
	}
	if ed.activeVersion() != ptr.version {
		if rec := ed.History.Current(); rec != nil {
			ed.restore(rec.State)
		}
	}
	if ptr.move != nil {
		sel := ptr.move.Origin
		ed.State.Selection = &sel
	}
}

// PointerCancel cancels the current interaction if the event belongs
// to it. It returns whether the event was handled.
func (ed *Editor) PointerCancel(e PointerEvent) bool {
	if !ed.accepts(e) {
		return false
	}
	ed.Cancel()
	return true
}

// ShapePreview returns the cells that the current line, rectangle or
// circle drag would paint on release, or nil outside a shape drag.
func (ed *Editor) ShapePreview() []grid.Key {
	if ed.ptr.mode != Shaping {
		return nil
	}
	s := ed.State
	return s.Brush().Cells(s.Tool.Shape().Centers(ed.ptr.start, ed.ptr.last))
}

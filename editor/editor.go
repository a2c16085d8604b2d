// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the pixel studio controller: a single
// [Editor] owns one project, its undo history and its pointer
// interaction state, and pushes every change to a [Renderer].
//
// An Editor is driven by one event loop and is not safe for
// concurrent use. Several editors may exist independently.
package editor

import (
	"encoding/json"
	"log/slog"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/drive"
	"cogentcore.org/pixelstudio/project"
	"cogentcore.org/pixelstudio/undo"
	"cogentcore.org/pixelstudio/xyz"
)

// Renderer displays projected scenes. It receives a freshly projected
// scene after every change that affects the model and replaces
// whatever it displayed before.
type Renderer interface {
	Render(sc *xyz.Scene)
}

// Editor is the controller of one project.
type Editor struct {

	// State is the project being edited.
	State *project.State

	// History holds one snapshot per committed action.
	History undo.Mgr

	// Drafts is the recovery store, written after every committed
	// action and parameter change. It may be nil.
	Drafts *project.DraftStore

	// Renderer receives the projected scene after every model change.
	// It may be nil.
	Renderer Renderer

	// Uploader is the cloud upload collaborator. It may be nil, in
	// which case uploads fail with [drive.ErrNotConfigured].
	Uploader drive.Uploader

	// FolderID is the destination folder of uploads.
	FolderID string

	// Alert is called with messages for the user, such as import
	// and upload failures. It may be nil.
	Alert func(msg string)

	ptr pointer
}

// New returns a new editor for the given project, with its history
// holding the project as the initial state. A nil project starts a
// new project with a single centered pixel.
func New(s *project.State) *Editor {
	if s == nil {
		s = project.NewWithCenter()
	}
	ed := &Editor{State: s}
	ed.History.Reset("Open", ed.snapshot())
	return ed
}

// LoadDraft restores the recovery draft, if any, and makes it the
// initial history state. It returns false if there is no usable draft.
func (ed *Editor) LoadDraft() bool {
	if !ed.Drafts.Load(ed.State) {
		return false
	}
	ed.ptr = pointer{}
	ed.History.Reset("Open draft", ed.snapshot())
	ed.render()
	return true
}

// Scene returns the projection of the current project.
func (ed *Editor) Scene() *xyz.Scene {
	return xyz.ProjectState(ed.State)
}

func (ed *Editor) snapshot() []byte {
	b, err := json.Marshal(ed.State)
	errors.Log(err)
	return b
}

// render pushes the projected scene to the renderer.
func (ed *Editor) render() {
	if ed.Renderer != nil {
		ed.Renderer.Render(ed.Scene())
	}
}

// commit records one undoable action: it saves a history snapshot,
// persists the draft and re-renders.
func (ed *Editor) commit(action string) {
	ed.History.Save(action, ed.snapshot())
	slog.Debug("editor: commit", "action", action, "history", ed.History.Index)
	ed.Drafts.Save(ed.State)
	ed.render()
}

// changed applies a parameter change that is not undoable: it
// persists the draft and re-renders.
func (ed *Editor) changed() {
	ed.Drafts.Save(ed.State)
	ed.render()
}

func (ed *Editor) alert(msg string, err error) {
	slog.Warn("editor: "+msg, "err", err)
	if ed.Alert != nil {
		if err != nil {
			msg += ": " + err.Error()
		}
		ed.Alert(msg)
	}
}

// restore replaces the project with the given snapshot.
func (ed *Editor) restore(state []byte) bool {
	if errors.Log(ed.State.Import(state, ed.State.Name)) != nil {
		return false
	}
	ed.ptr = pointer{}
	ed.changed()
	return true
}

// Undo restores the state before the last committed action.
// It returns false if there is nothing to undo.
func (ed *Editor) Undo() bool {
	ed.Cancel()
	action, state, ok := ed.History.Undo()
	if !ok {
		return false
	}
	slog.Debug("editor: undo", "action", action)
	return ed.restore(state)
}

// Redo restores the state after the next undone action.
// It returns false if there is nothing to redo.
func (ed *Editor) Redo() bool {
	ed.Cancel()
	action, state, ok := ed.History.Redo()
	if !ok {
		return false
	}
	slog.Debug("editor: redo", "action", action)
	return ed.restore(state)
}

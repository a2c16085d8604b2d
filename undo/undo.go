// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a bounded linear undo manager of full-state
// snapshots. Each record holds the complete serialized state after one
// user action; undo and redo move the current index and hand back the
// snapshot to restore wholesale.
package undo

import (
	"log/slog"
	"slices"
	"sync"
)

// DefaultMax is the default maximum number of records kept.
var DefaultMax = 30

// Rec is one undo record, associated with one action that changed state.
type Rec struct {

	// Action is a description of the action, for the user to see.
	Action string

	// State is the full serialized state after the action.
	State []byte
}

// Mgr is the undo manager, managing the undo / redo process.
// The zero value is ready to use with [DefaultMax] records.
type Mgr struct {

	// Index is the index of the record holding the current state.
	// It is -1 when there are no records.
	Index int

	// Recs are the saved records, oldest first.
	Recs []*Rec

	// Max is the maximum number of records. When exceeded, the oldest
	// record is evicted. 0 means [DefaultMax].
	Max int

	// Mu protects updates.
	Mu sync.Mutex
}

func (um *Mgr) max() int {
	if um.Max <= 0 {
		return DefaultMax
	}
	return um.Max
}

// Save saves the state after a new action as the current record,
// discarding any records after the current index (the redo branch).
// The state is retained, not copied, so the caller must not modify it.
func (um *Mgr) Save(action string, state []byte) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Recs == nil {
		um.Index = -1
	}
	if um.Index < len(um.Recs)-1 {
		um.Recs = slices.Delete(um.Recs, um.Index+1, len(um.Recs))
	}
	um.Recs = append(um.Recs, &Rec{Action: action, State: state})
	um.Index++
	if n := len(um.Recs) - um.max(); n > 0 {
		slog.Debug("undo: evicting oldest records", "n", n)
		um.Recs = slices.Delete(um.Recs, 0, n)
		um.Index -= n
	}
}

// Reset discards all records and saves the given state as the only one.
func (um *Mgr) Reset(action string, state []byte) {
	um.Mu.Lock()
	um.Recs = nil
	um.Mu.Unlock()
	um.Save(action, state)
}

// IsUndoAvail returns true if there is a record before the current one.
func (um *Mgr) IsUndoAvail() bool {
	return um.Index > 0
}

// IsRedoAvail returns true if there is a record after the current one.
func (um *Mgr) IsRedoAvail() bool {
	return um.Index < len(um.Recs)-1
}

// Undo moves to the previous record and returns its action and state.
// It returns ok = false, changing nothing, if there is no previous record.
func (um *Mgr) Undo() (action string, state []byte, ok bool) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index <= 0 || len(um.Recs) == 0 {
		return
	}
	um.Index--
	rec := um.Recs[um.Index]
	return rec.Action, rec.State, true
}

// Redo moves to the next record and returns its action and state.
// It returns ok = false, changing nothing, if already at the last record.
func (um *Mgr) Redo() (action string, state []byte, ok bool) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index >= len(um.Recs)-1 {
		return
	}
	um.Index++
	rec := um.Recs[um.Index]
	return rec.Action, rec.State, true
}

// Current returns the current record, or nil if there is none.
func (um *Mgr) Current() *Rec {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index < 0 || um.Index >= len(um.Recs) {
		return nil
	}
	return um.Recs[um.Index]
}

// Len returns the number of records.
func (um *Mgr) Len() int {
	return len(um.Recs)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"context"
	"testing"

	"cogentcore.org/pixelstudio/drive"
	"cogentcore.org/pixelstudio/export"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"cogentcore.org/pixelstudio/project"
	"cogentcore.org/pixelstudio/xyz"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countRenderer struct {
	n    int
	last *xyz.Scene
}

func (cr *countRenderer) Render(sc *xyz.Scene) {
	cr.n++
	cr.last = sc
}

type fakeUploader struct {
	name, mime, folder string
	size               int
}

func (fu *fakeUploader) Upload(ctx context.Context, filename string, data []byte, mimeType, folderID string) (*drive.File, error) {
	fu.name, fu.mime, fu.folder, fu.size = filename, mimeType, folderID, len(data)
	return &drive.File{ID: "1", Name: filename}, nil
}

func newEditor(t *testing.T) (*Editor, *countRenderer, *[]string) {
	t.Helper()
	ed := New(project.New())
	cr := &countRenderer{}
	ed.Renderer = cr
	var alerts []string
	ed.Alert = func(msg string) { alerts = append(alerts, msg) }
	return ed, cr, &alerts
}

func ev(x, y int) PointerEvent {
	return PointerEvent{ID: 1, Type: Mouse, Primary: true, Pos: grid.K(x, y)}
}

func click(ed *Editor, x, y int) {
	ed.PointerDown(ev(x, y))
	ed.PointerUp(ev(x, y))
}

func drag(ed *Editor, from, to grid.Key) {
	ed.PointerDown(ev(from.X, from.Y))
	ed.PointerMove(ev(to.X, to.Y))
	ed.PointerUp(ev(to.X, to.Y))
}

func TestNew(t *testing.T) {
	ed := New(nil)
	assert.Equal(t, layers.Pixels{{8, 8}: project.DefaultColor}, ed.State.Composite())
	assert.Equal(t, 1, ed.History.Len())
	assert.False(t, ed.Undo())
	assert.False(t, ed.Redo())

	// independent editors do not share state
	other := New(nil)
	click(other, 0, 0)
	assert.Len(t, ed.State.Composite(), 1)
	assert.Len(t, other.State.Composite(), 2)
}

func TestPaintSymmetry(t *testing.T) {
	ed, cr, _ := newEditor(t)
	click(ed, 8, 8)
	assert.Equal(t, layers.Pixels{{8, 8}: "#3b82f6"}, ed.State.Composite())

	ed.State.Layers.Active().Clear()
	ed.SetSymmetry(true, true)
	click(ed, 2, 2)
	c := "#3b82f6"
	assert.Equal(t, layers.Pixels{{2, 2}: c, {13, 2}: c, {2, 13}: c, {13, 13}: c}, ed.State.Composite())
	assert.Equal(t, 3, ed.History.Len())
	assert.Equal(t, 2, cr.n)
	assert.Equal(t, 4, cr.last.NumInstances())
}

func TestLineTool(t *testing.T) {
	ed, _, _ := newEditor(t)
	require.True(t, ed.SetTool(project.Line))
	ed.PointerDown(ev(0, 0))
	ed.PointerMove(ev(5, 0))
	assert.Equal(t, Shaping, ed.Mode())
	assert.Len(t, ed.ShapePreview(), 6)
	assert.Empty(t, ed.State.Composite(), "shapes paint on release")
	ed.PointerUp(ev(5, 0))
	assert.Equal(t, Idle, ed.Mode())
	assert.Nil(t, ed.ShapePreview())

	px := ed.State.Composite()
	require.Len(t, px, 6)
	for x := range 6 {
		assert.Equal(t, "#3b82f6", px[grid.K(x, 0)])
	}
	assert.Equal(t, 2, ed.History.Len())
}

func TestDrawStrokeHasNoGaps(t *testing.T) {
	ed, _, _ := newEditor(t)
	ed.PointerDown(ev(0, 0))
	ed.PointerMove(ev(4, 4))
	ed.PointerUp(ev(4, 4))
	assert.Len(t, ed.State.Composite(), 5)
	assert.Equal(t, 2, ed.History.Len(), "one stroke is one action")
}

func TestShapeStartsOffCanvas(t *testing.T) {
	ed, _, _ := newEditor(t)
	require.True(t, ed.SetTool(project.Line))
	require.True(t, ed.PointerDown(ev(-2, 0)))
	assert.Equal(t, Shaping, ed.Mode())
	ed.PointerMove(ev(2, 0))
	ed.PointerUp(ev(2, 0))
	assert.Equal(t, layers.Pixels{{0, 0}: "#3b82f6", {1, 0}: "#3b82f6", {2, 0}: "#3b82f6"}, ed.State.Composite())
	assert.Equal(t, 2, ed.History.Len())

	require.True(t, ed.SetTool(project.Fill))
	assert.False(t, ed.PointerDown(ev(-2, 0)), "fill stays inside the grid")
}

func TestMoveEmptySelection(t *testing.T) {
	ed, _, _ := newEditor(t)
	ed.Select(grid.R(8, 8, 9, 9))
	hist := ed.History.Len()
	drag(ed, grid.K(8, 8), grid.K(10, 10))
	assert.Equal(t, grid.R(10, 10, 11, 11), *ed.State.Selection)
	assert.Equal(t, hist+1, ed.History.Len(), "a move is one action even over empty cells")

	ed.PointerDown(ev(10, 10))
	ed.PointerMove(ev(12, 12))
	ed.Cancel()
	assert.Equal(t, grid.R(10, 10, 11, 11), *ed.State.Selection)
}

func TestPointerFiltering(t *testing.T) {
	ed, _, _ := newEditor(t)
	assert.False(t, ed.PointerDown(PointerEvent{ID: 1, Primary: false, Pos: grid.K(1, 1)}))
	assert.False(t, ed.PointerDown(ev(16, 0)), "outside the grid")

	ed.SetPencilOnly(true)
	assert.False(t, ed.PointerDown(ev(1, 1)))
	pen := PointerEvent{ID: 7, Type: Pen, Primary: true, Pos: grid.K(1, 1)}
	require.True(t, ed.PointerDown(pen))

	// a second pointer during the stroke is ignored
	other := PointerEvent{ID: 8, Type: Pen, Primary: true, Pos: grid.K(9, 9)}
	assert.False(t, ed.PointerDown(other))
	assert.False(t, ed.PointerMove(other))
	assert.False(t, ed.PointerUp(other))
	assert.Equal(t, Drawing, ed.Mode())

	assert.True(t, ed.PointerUp(pen))
	assert.Equal(t, layers.Pixels{{1, 1}: "#3b82f6"}, ed.State.Composite())
}

func TestCancelRollsBack(t *testing.T) {
	ed, _, _ := newEditor(t)
	click(ed, 0, 0)
	ed.PointerDown(ev(3, 3))
	ed.PointerMove(ev(5, 3))
	assert.Len(t, ed.State.Composite(), 4)
	assert.True(t, ed.PointerCancel(ev(5, 3)))
	assert.Equal(t, Idle, ed.Mode())
	assert.Equal(t, layers.Pixels{{0, 0}: "#3b82f6"}, ed.State.Composite())
	assert.Equal(t, 2, ed.History.Len())
}

func TestUndoRedo(t *testing.T) {
	ed, _, _ := newEditor(t)
	click(ed, 1, 1)
	click(ed, 2, 2)
	require.True(t, ed.Undo())
	assert.Equal(t, layers.Pixels{{1, 1}: "#3b82f6"}, ed.State.Composite())
	require.True(t, ed.Undo())
	assert.Empty(t, ed.State.Composite())
	assert.False(t, ed.Undo())
	require.True(t, ed.Redo())
	assert.Len(t, ed.State.Composite(), 1)

	// a new action discards the redo branch
	click(ed, 5, 5)
	assert.False(t, ed.Redo())
	assert.Equal(t, layers.Pixels{{1, 1}: "#3b82f6", {5, 5}: "#3b82f6"}, ed.State.Composite())
}

func TestHistoryBound(t *testing.T) {
	ed, _, _ := newEditor(t)
	// the opening state plus 30 paints exceed the 30 record bound
	for i := range 30 {
		click(ed, i%16, i/16)
	}
	assert.Equal(t, 30, ed.History.Len())
	n := 0
	for range 30 {
		if ed.Undo() {
			n++
		}
	}
	assert.Equal(t, 29, n)
	assert.Equal(t, layers.Pixels{{0, 0}: "#3b82f6"}, ed.State.Composite(), "oldest reachable is the first paint")
}

func TestFill(t *testing.T) {
	ed, _, _ := newEditor(t)
	require.True(t, ed.SetTool(project.Fill))
	ed.PointerDown(ev(3, 3))
	assert.Equal(t, Idle, ed.Mode())
	assert.Len(t, ed.State.Composite(), 256)
	assert.Equal(t, 2, ed.History.Len())

	// same color fill is a no-op
	click(ed, 0, 0)
	assert.Equal(t, 2, ed.History.Len())

	ly := ed.State.Layers.Active()
	ed.SetLayerLocked(ly.ID, true)
	ed.SetColor("#ff0000")
	click(ed, 0, 0)
	assert.Equal(t, "#3b82f6", ed.State.Composite()[grid.K(0, 0)])
	assert.Equal(t, 2, ed.History.Len())
}

func TestSelectAndMove(t *testing.T) {
	ed, _, _ := newEditor(t)
	click(ed, 2, 2)
	click(ed, 3, 2)
	require.True(t, ed.SetTool(project.Select))

	drag(ed, grid.K(3, 3), grid.K(1, 1))
	require.NotNil(t, ed.State.Selection)
	assert.Equal(t, grid.R(1, 1, 3, 3), *ed.State.Selection, "normalized on release")
	hist := ed.History.Len()

	ed.PointerDown(ev(2, 2))
	assert.Equal(t, Moving, ed.Mode())
	ed.PointerMove(ev(3, 3))
	ed.PointerMove(ev(4, 4))
	ed.PointerUp(ev(4, 4))
	assert.Equal(t, grid.R(3, 3, 5, 5), *ed.State.Selection)
	assert.Equal(t, layers.Pixels{{4, 4}: "#3b82f6", {5, 4}: "#3b82f6"}, ed.State.Composite())
	assert.Equal(t, hist+1, ed.History.Len())

	// a canceled move restores both the pixels and the selection
	ed.PointerDown(ev(4, 4))
	ed.PointerMove(ev(6, 6))
	assert.True(t, ed.PointerCancel(ev(6, 6)))
	assert.Equal(t, grid.R(3, 3, 5, 5), *ed.State.Selection)
	assert.Equal(t, layers.Pixels{{4, 4}: "#3b82f6", {5, 4}: "#3b82f6"}, ed.State.Composite())
	assert.Equal(t, hist+1, ed.History.Len())

	require.True(t, ed.SetTool(project.Draw))
	assert.Nil(t, ed.State.Selection)
}

func TestSelectionActions(t *testing.T) {
	ed, _, _ := newEditor(t)
	click(ed, 0, 0)
	click(ed, 1, 0)
	assert.False(t, ed.RotateSelection(), "no selection")

	ed.Select(grid.R(1, 0, 0, 0))
	require.True(t, ed.CopySelection())
	assert.Equal(t, layers.Pixels{{0, 0}: "#3b82f6", {1, 0}: "#3b82f6"}, ed.State.Clipboard)
	assert.Equal(t, grid.R(1, 1, 2, 1), *ed.State.Selection)
	assert.Len(t, ed.State.Composite(), 4)

	require.True(t, ed.RotateSelection())
	assert.Equal(t, grid.R(1, 1, 1, 2), *ed.State.Selection)
	px := ed.State.Composite()
	assert.Contains(t, px, grid.K(1, 2))
	assert.NotContains(t, px, grid.K(2, 1))

	require.True(t, ed.ScaleSelection(2))
	assert.Equal(t, grid.R(1, 1, 2, 4), *ed.State.Selection)

	nl := ed.SelectionToNewLayer()
	require.NotNil(t, nl)
	assert.Equal(t, 2, ed.State.Layers.Len())
	assert.Equal(t, nl.ID, ed.State.Layers.ActiveID())
	assert.Equal(t, 8, nl.Len())

	require.True(t, ed.PasteClipboard(0, 5))
	assert.Equal(t, grid.R(0, 5, 1, 5), *ed.State.Selection)
	assert.Contains(t, ed.State.Composite(), grid.K(1, 5))
}

func TestLayers(t *testing.T) {
	ed, cr, _ := newEditor(t)
	first := ed.State.Layers.ActiveID()
	ly := ed.AddLayer("")
	assert.Equal(t, "Layer 2", ly.Name)
	assert.Equal(t, ly.ID, ed.State.Layers.ActiveID())

	click(ed, 4, 4)
	require.True(t, ed.SetActiveLayer(first))
	ed.SetColor("#ff0000")
	click(ed, 4, 4)
	assert.Equal(t, "#3b82f6", ed.State.Composite()[grid.K(4, 4)], "upper layer wins")

	n := cr.n
	require.True(t, ed.SetLayerVisible(ly.ID, false))
	assert.Equal(t, "#ff0000", ed.State.Composite()[grid.K(4, 4)])
	assert.Equal(t, n+1, cr.n)

	assert.True(t, ed.MoveLayer(first, layers.Down))
	assert.False(t, ed.MoveLayer(first, layers.Down))
	assert.True(t, ed.RenameLayer(ly.ID, "Outline"))
	assert.True(t, ed.DeleteLayer(ly.ID))
	assert.False(t, ed.DeleteLayer(first), "last layer")
	assert.Equal(t, 1, ed.State.Layers.Len())
}

func TestParameters(t *testing.T) {
	ed, cr, _ := newEditor(t)
	hist := ed.History.Len()
	assert.False(t, ed.SetMMScale(0))
	assert.True(t, ed.SetMMScale(2))
	assert.True(t, ed.SetLayerThickness(3))
	assert.False(t, ed.SetBrushSize(0))
	assert.True(t, ed.SetBrushSize(3))
	ed.SetRelief(project.Relief{Enabled: true})
	assert.Equal(t, project.DefaultRelief().Inset, ed.State.Relief.Inset)
	ed.SetHanger(project.Hanger{Enabled: true, Style: project.Heart})
	ed.SetText(project.Text{Enabled: true, Content: "A"})
	assert.Equal(t, hist, ed.History.Len(), "parameters are not undoable")
	assert.Equal(t, 5, cr.n)
	assert.False(t, ed.SetColor("nope"))
	assert.True(t, ed.SetColor("#ABC"))
	assert.Equal(t, "#aabbcc", ed.State.Color)
	assert.Equal(t, []string{"#aabbcc"}, ed.State.RecentColors)

	click(ed, 1, 1)
	require.True(t, ed.Resize(8, 4))
	assert.Empty(t, ed.State.Composite())
	assert.Equal(t, grid.Size{W: 8, H: 4}, ed.State.Size())
	assert.False(t, ed.Resize(0, 4))
	require.True(t, ed.Undo())
	assert.Equal(t, 16, ed.State.GridW)
	assert.Len(t, ed.State.Composite(), 9)
}

func TestImportExport(t *testing.T) {
	ed, _, alerts := newEditor(t)
	_, err := ed.Export(context.Background(), export.STL)
	assert.ErrorIs(t, err, export.ErrEmptyCanvas)
	require.Len(t, *alerts, 1)

	click(ed, 1, 1)
	ed.SetName("Badge")
	f, err := ed.Export(context.Background(), export.JSON)
	require.NoError(t, err)
	assert.Equal(t, "Badge.json", f.Name)

	other, _, alerts2 := newEditor(t)
	require.NoError(t, other.Import(f.Data, "fallback"))
	assert.Equal(t, ed.State.Composite(), other.State.Composite())
	assert.Equal(t, "Badge", other.State.Name)
	assert.Equal(t, 2, other.History.Len())

	err = other.Import([]byte("{bad"), "x")
	assert.Error(t, err)
	assert.Len(t, *alerts2, 1)
	assert.Equal(t, ed.State.Composite(), other.State.Composite())

	_, err = other.ImportImage([]byte("nope"), "Image")
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	ed, _, alerts := newEditor(t)
	click(ed, 1, 1)
	_, err := ed.Upload(context.Background(), export.GLB)
	assert.ErrorIs(t, err, drive.ErrNotConfigured)
	assert.Len(t, *alerts, 1)

	fu := &fakeUploader{}
	ed.Uploader = fu
	ed.FolderID = "prints"
	df, err := ed.Upload(context.Background(), export.GLB)
	require.NoError(t, err)
	assert.Equal(t, "Untitled.glb", df.Name)
	assert.Equal(t, "model/gltf-binary", fu.mime)
	assert.Equal(t, "prints", fu.folder)
	assert.Positive(t, fu.size)
}

func TestDrafts(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	ds := &project.DraftStore{FS: fs}

	ed := New(project.New())
	ed.Drafts = ds
	click(ed, 6, 6)

	next := New(project.New())
	next.Drafts = ds
	require.True(t, next.LoadDraft())
	assert.Equal(t, layers.Pixels{{6, 6}: "#3b82f6"}, next.State.Composite())
	assert.Equal(t, 1, next.History.Len())

	empty := New(nil)
	assert.False(t, empty.LoadDraft(), "nil store")
	assert.Len(t, empty.State.Composite(), 1)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"encoding/json"
	"testing"

	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, 16, s.GridW)
	assert.Equal(t, 16, s.GridH)
	assert.Equal(t, DefaultColor, s.Color)
	assert.Equal(t, Draw, s.Tool)
	assert.Len(t, s.PalettePresets, 8)
	assert.Equal(t, 1, s.Layers.Len())
	assert.Empty(t, s.Composite())

	c := NewWithCenter()
	assert.Equal(t, layers.Pixels{{8, 8}: DefaultColor}, c.Composite())
}

func TestPaintScenario(t *testing.T) {
	s := New()
	s.Brush().Stamp(s.Layers.Active(), grid.K(8, 8), s.Color, false)
	b, err := json.Marshal(s.Composite())
	require.NoError(t, err)
	assert.JSONEq(t, `{"8,8":"#3b82f6"}`, string(b))
}

func TestReliefResolve(t *testing.T) {
	inset, height, capSize, bodyH := DefaultRelief().Resolve(1, 1)
	assert.InDelta(t, 0.2, inset, 1e-6)
	assert.InDelta(t, 0.5, height, 1e-6)
	assert.InDelta(t, 0.6, capSize, 1e-6)
	assert.InDelta(t, 0.5, bodyH, 1e-6)

	inset, height, capSize, bodyH = Relief{Inset: 5, Height: 5}.Resolve(1, 1)
	assert.InDelta(t, 0.45, inset, 1e-6)
	assert.InDelta(t, 0.9, height, 1e-6)
	assert.InDelta(t, 0.1, capSize, 1e-6)
	assert.InDelta(t, 0.1, bodyH, 1e-6)

	_, height, _, _ = Relief{Inset: 0.01, Height: 0}.Resolve(1, 0.01)
	assert.InDelta(t, 0.05, height, 1e-6, "zero height means default, then clamped")
}

func TestFeatureNormalize(t *testing.T) {
	r := Relief{}
	r.Normalize()
	assert.Equal(t, DefaultRelief(), r)

	tx := Text{Content: "Café", Color: "bogus"}
	tx.Normalize()
	assert.Equal(t, "Café", tx.Content)
	assert.Equal(t, "#ffffff", tx.Color)
	assert.EqualValues(t, 8, tx.Size)

	h := Hanger{Style: "wavy", Color: "#FACC15"}
	h.Normalize()
	assert.Equal(t, HangerStyles("wavy"), h.Style)
	assert.False(t, h.Style.IsValid())
	assert.Equal(t, "#facc15", h.Color)
	assert.EqualValues(t, 3, h.Radius)
}

func TestJSONRoundTrip(t *testing.T) {
	s := New()
	s.Name = "Star"
	s.GridW, s.GridH = 20, 12
	s.MMScale = 2.5
	s.Layers.Active().Set(grid.K(1, 1), "#ff0000")
	top := s.Layers.Add("")
	top.Set(grid.K(1, 1), "#00ff00")
	top.Set(grid.K(19, 11), "#0000ff")
	hidden := s.Layers.Add("hidden")
	hidden.Set(grid.K(5, 5), "#ffffff")
	s.Layers.SetVisible(hidden.ID, false)
	s.Relief.Enabled = true
	s.Text = Text{Enabled: true, Content: "HI", Size: 5, Thickness: 2, X: 1, Y: -1, Color: "#123456"}
	s.Hanger.Style = Heart
	s.UseColor("#ABCDEF")

	b, err := json.Marshal(s)
	require.NoError(t, err)

	back := New()
	require.NoError(t, back.Import(b, "ignored"))
	assert.Equal(t, "Star", back.Name)
	assert.Equal(t, s.Composite(), back.Composite())
	assert.Equal(t, s.Size(), back.Size())
	assert.Equal(t, s.Relief, back.Relief)
	assert.Equal(t, s.Text, back.Text)
	assert.Equal(t, s.Hanger, back.Hanger)
	assert.Equal(t, s.Layers.ActiveID(), back.Layers.ActiveID())
	assert.Equal(t, []string{"#abcdef"}, back.RecentColors)
	assert.Equal(t, "#abcdef", back.Color)
	assert.InDelta(t, 2.5, back.MMScale, 1e-6)
}

func TestImportDefaults(t *testing.T) {
	s := New()
	s.Tool = Fill
	s.Text.Content = "KEEP"
	require.NoError(t, s.Import([]byte(`{"gridW": 0, "text": {"size": 3}}`), "heart.json"))
	assert.Equal(t, 16, s.GridW, "zero numeric falls back to the default")
	assert.Equal(t, Fill, s.Tool, "missing tool keeps the current one")
	assert.Equal(t, "KEEP", s.Text.Content, "missing feature fields keep current values")
	assert.EqualValues(t, 3, s.Text.Size)
	assert.Equal(t, "heart.json", s.Name)
	assert.Equal(t, 1, s.Layers.Len())
}

func TestImportLegacyPixels(t *testing.T) {
	s := New()
	require.NoError(t, s.Import([]byte(`{"gridW":8,"gridH":8,"pixels":{"1,2":"#F00","9,9":"#fff","3,3":"nope","x,1":"#fff"}}`), ""))
	require.Equal(t, 1, s.Layers.Len())
	assert.Equal(t, "Layer 1", s.Layers.Active().Name)
	assert.Equal(t, layers.Pixels{{1, 2}: "#ff0000"}, s.Composite())
	assert.Equal(t, DefaultName, s.Name)
}

func TestImportInvalidKeys(t *testing.T) {
	s := New()
	data := `{"layers":[{"id":"a","name":"Base","pixels":{"x,1":"#f00","2,2":"#0f0","1":"#00f"}}],"activeLayerId":"a"}`
	require.NoError(t, s.Import([]byte(data), ""))
	require.Equal(t, 1, s.Layers.Len())
	assert.Equal(t, "a", s.Layers.ActiveID())
	assert.Equal(t, layers.Pixels{{2, 2}: "#00ff00"}, s.Composite())
}

func TestImportErrors(t *testing.T) {
	s := New()
	s.Layers.Active().Set(grid.K(0, 0), "#ffffff")
	before := s.Composite().Clone()

	assert.Error(t, s.Import([]byte(`{not json`), ""))
	assert.Error(t, s.Import([]byte(`{"layers": "x"}`), ""))
	assert.Error(t, s.Import([]byte(`{"version": "banana"}`), ""))
	err := s.Import([]byte(`{"version": "4.0.0"}`), "")
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.Equal(t, before, s.Composite())

	assert.NoError(t, s.Import([]byte(`{"version": "3.9.1"}`), ""))
}

func TestResizeAndColor(t *testing.T) {
	s := New()
	s.Layers.Active().Set(grid.K(1, 1), "#ffffff")
	s.Selection = &grid.Rect{}
	assert.False(t, s.Resize(0, 4))
	assert.True(t, s.Resize(32, 8))
	assert.Empty(t, s.Composite())
	assert.Nil(t, s.Selection)

	assert.False(t, s.UseColor("zz"))
	assert.True(t, s.UseColor("#EF4444"))
	assert.True(t, s.UseColor("#3b82f6"))
	assert.Equal(t, []string{"#3b82f6", "#ef4444"}, s.RecentColors)
}

func TestClone(t *testing.T) {
	s := New()
	s.Selection = &grid.Rect{X2: 3}
	cl := s.Clone()
	cl.Selection.X2 = 9
	cl.Layers.Active().Set(grid.K(0, 0), "#000000")
	assert.Equal(t, 3, s.Selection.X2)
	assert.Empty(t, s.Composite())
}

func TestToolsShape(t *testing.T) {
	assert.True(t, Line.IsShape())
	assert.False(t, Fill.IsShape())
	assert.False(t, Tools("spray").IsValid())
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, DefaultName, CleanName("   "))
	assert.Equal(t, "Star", CleanName(" Star "))
}

func TestDraftStore(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	ds := &DraftStore{FS: fs, Dir: "drafts"}

	fresh := New()
	assert.False(t, ds.Load(fresh), "no draft yet")

	s := New()
	s.Name = "Draft"
	s.Layers.Active().Set(grid.K(3, 4), "#22c55e")
	ds.Save(s)

	back := New()
	require.True(t, ds.Load(back))
	assert.Equal(t, "Draft", back.Name)
	assert.Equal(t, s.Composite(), back.Composite())
}

func TestDraftStoreUnavailable(t *testing.T) {
	var nilStore *DraftStore
	nilStore.Save(New())
	assert.False(t, nilStore.Load(New()))

	fs, err := mem.NewFS()
	require.NoError(t, err)
	ds := &DraftStore{FS: fs}
	require.NoError(t, writeRaw(ds, []byte("garbage")))
	s := New()
	assert.False(t, ds.Load(s), "unparsable draft counts as no draft")
	assert.Equal(t, DefaultName, s.Name)
}

func TestNormPath(t *testing.T) {
	assert.Equal(t, "home/me/.pixelstudio", NormPath("/home/me/.pixelstudio/"))
	assert.Equal(t, ".", NormPath("/"))
}

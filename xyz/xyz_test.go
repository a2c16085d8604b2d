// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"cogentcore.org/pixelstudio/math32"
	"cogentcore.org/pixelstudio/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params() Params {
	return Params{GridW: 16, GridH: 16, MMScale: 1, Thickness: 1,
		Relief: project.DefaultRelief(), Text: project.DefaultText(), Hanger: project.DefaultHanger()}
}

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestProjectPixels(t *testing.T) {
	px := layers.Pixels{{0, 0}: "#ff0000", {15, 15}: "#ff0000", {8, 8}: "#00ff00"}
	sc := Project(px, params())
	require.Len(t, sc.Solids, 2)

	green, red := sc.Solids[0], sc.Solids[1]
	assert.Equal(t, "mat_00ff00", green.Material.Name)
	assert.Equal(t, "mat_ff0000", red.Material.Name)
	require.Len(t, red.Instances, 2)
	assertVec(t, math32.Vec3(-7.5, 0.5, -7.5), red.Instances[0].Pos)
	assertVec(t, math32.Vec3(7.5, 0.5, 7.5), red.Instances[1].Pos)
	assertVec(t, math32.Vec3(0.5, 0.5, 0.5), green.Instances[0].Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), red.Shape.(*Box).Size)
	assert.Equal(t, 3, sc.NumInstances())
}

func TestProjectIdempotent(t *testing.T) {
	px := layers.Pixels{}
	for i := range 10 {
		px[grid.K(i, 15-i)] = []string{"#ff0000", "#00ff00", "#0000ff"}[i%3]
	}
	p := params()
	p.Relief.Enabled = true
	p.Hanger.Enabled = true
	assert.Equal(t, Project(px, p), Project(px, p))
}

func TestProjectRelief(t *testing.T) {
	p := params()
	p.Relief.Enabled = true
	p.MMScale = 2
	sc := Project(layers.Pixels{{0, 0}: "#ffffff"}, p)
	require.Len(t, sc.Solids, 2)
	body, caps := sc.Solids[0], sc.Solids[1]
	assert.Equal(t, "relief", caps.Name)
	assert.Equal(t, body.Material, caps.Material)
	// thick 1, height 0.5: body 0.5; inset 0.2: cap 2 - 0.4
	assertVec(t, math32.Vec3(2, 0.5, 2), body.Shape.(*Box).Size)
	assertVec(t, math32.Vec3(1.6, 0.5, 1.6), caps.Shape.(*Box).Size)
	assertVec(t, math32.Vec3(-15, 0.25, -15), body.Instances[0].Pos)
	assertVec(t, math32.Vec3(-15, 0.75, -15), caps.Instances[0].Pos)
}

func TestProjectHanger(t *testing.T) {
	p := params()
	p.Hanger.Enabled = true
	p.MMScale = 2
	sc := Project(nil, p)
	require.Len(t, sc.Solids, 1)
	ring := sc.Solids[0]
	assert.Equal(t, "mat_facc15", ring.Material.Name)
	tr := ring.Shape.(*Torus)
	assert.EqualValues(t, 3, tr.Radius)
	assert.EqualValues(t, 0.5, tr.Tube)
	assert.Equal(t, 32, tr.TubularSegs)
	assertVec(t, math32.Vec3(0, 0.5, -20), ring.Instances[0].Pos)

	p.Hanger.Style = project.DoubleRing
	sc = Project(nil, p)
	require.Len(t, sc.Solids, 2)
	assert.EqualValues(t, 2, sc.Solids[1].Shape.(*Torus).Radius)

	p.Hanger.Style = project.PixelSquare
	sc = Project(nil, p)
	ex := sc.Solids[0].Shape.(*Extrusion)
	assert.InDelta(t, 6, ex.Outer[1].X-ex.Outer[0].X, 1e-5)
	assert.InDelta(t, 5, ex.Hole[1].X-ex.Hole[0].X, 1e-5)
	assertVec(t, math32.Vec3(0, 0, -20), sc.Solids[0].Instances[0].Pos)

	p.Hanger.Style = project.Heart
	sc = Project(nil, p)
	assert.EqualValues(t, math32.Pi, sc.Solids[0].Instances[0].RotZ)
	assert.Len(t, sc.Solids[0].Shape.(*Extrusion).Outer, 2*HeartSegments)

	p.Hanger.Style = "zigzag"
	sc = Project(nil, p)
	assert.IsType(t, &Torus{}, sc.Solids[0].Shape)
}

func TestProjectText(t *testing.T) {
	p := params()
	p.Text.Enabled = true
	sc := Project(nil, p)
	require.Len(t, sc.Solids, 1)
	sld := sc.Solids[0]
	assert.Equal(t, "mat_ffffff", sld.Material.Name)
	tx := sld.Shape.(*Text)
	assert.False(t, tx.IsEmpty())
	assert.Greater(t, tx.Width(), float32(10), "PIXEL at size 8 is wider than 10 mm")
	assert.Greater(t, tx.Height(), float32(4))
	assert.InDelta(t, -tx.Width()/2, sld.Instances[0].Pos.X, 1e-5)
	assert.EqualValues(t, 1, sld.Instances[0].Pos.Y)

	bb := tx.Mesh().BBox()
	assert.InDelta(t, 0, bb.Min.Z, 1e-5)
	assert.InDelta(t, 1, bb.Max.Z, 1e-5)

	p.Text.Content = ""
	assert.Empty(t, Project(nil, p).Solids)
	p.Text.Content = "   "
	assert.Empty(t, Project(nil, p).Solids, "blank text has no ink")
}

func TestBoxMesh(t *testing.T) {
	ms := NewBox(2, 4, 6).Mesh()
	assert.Equal(t, 12, ms.NumTriangles())
	bb := ms.BBox()
	assertVec(t, math32.Vec3(-1, -2, -3), bb.Min)
	assertVec(t, math32.Vec3(1, 2, 3), bb.Max)
	assertOutward(t, ms)
}

// assertOutward checks that every triangle winds counter-clockwise
// around its vertex normal.
func assertOutward(t *testing.T, ms *Mesh) {
	t.Helper()
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		n := ms.Normals[ms.Indices[3*i]]
		assert.GreaterOrEqual(t, b.Sub(a).Cross(c.Sub(a)).Dot(n), float32(-1e-6), "triangle %d", i)
	}
}

func TestTorusMesh(t *testing.T) {
	ms := (&Torus{Radius: 3, Tube: 0.5, RadialSegs: 16, TubularSegs: 32}).Mesh()
	assert.Equal(t, 2*16*32, ms.NumTriangles())
	bb := ms.BBox()
	assert.InDelta(t, 3.5, bb.Max.X, 1e-4)
	assert.InDelta(t, 0.5, bb.Max.Z, 1e-4)
}

func TestExtrusionMesh(t *testing.T) {
	out, hole := SquareRing(4, 2)
	ms := (&Extrusion{Outer: out, Hole: hole, Depth: 1}).Mesh()
	assert.Equal(t, 4*4*2, ms.NumTriangles())
	assertOutward(t, ms)

	// clockwise outlines are reoriented
	cw := (&Extrusion{Outer: reversed(out), Hole: reversed(hole), Depth: 1}).Mesh()
	assertOutward(t, cw)

	assert.Zero(t, (&Extrusion{Outer: out, Hole: hole[:2]}).Mesh().NumTriangles())

	hOut, hHole := HeartRing(2.7)
	assert.Len(t, hOut, len(hHole))
	assert.Greater(t, signedArea(hOut), float32(0))
}

func TestSceneMeshes(t *testing.T) {
	p := params()
	p.Hanger.Enabled = true
	sc := Project(layers.Pixels{{0, 0}: "#ff0000", {1, 0}: "#ff0000"}, p)
	parts := sc.Meshes()
	require.Len(t, parts, 3)
	assert.Equal(t, "pixels_0", parts[0].Name)
	assert.Equal(t, "hanger", parts[2].Name)
	assert.Equal(t, []Material{NewMaterial("#ff0000"), NewMaterial("#facc15")}, sc.Materials())

	bb := parts[1].Mesh.BBox()
	assertVec(t, math32.Vec3(-7, 0, -8), bb.Min)
	assertVec(t, math32.Vec3(-6, 1, -7), bb.Max)
	assert.False(t, sc.IsEmpty())
	assert.True(t, Project(nil, params()).IsEmpty())
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"slices"

	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"cogentcore.org/pixelstudio/math32"
	"cogentcore.org/pixelstudio/project"
)

// Params are the project settings that shape the model.
type Params struct {
	GridW, GridH int

	// MMScale is the size of one cell, in mm.
	MMScale float32

	// Thickness is the layer thickness, in mm.
	Thickness float32

	Relief project.Relief
	Text   project.Text
	Hanger project.Hanger
}

// ParamsOf returns the model parameters of the given project.
func ParamsOf(s *project.State) Params {
	return Params{GridW: s.GridW, GridH: s.GridH, MMScale: s.MMScale, Thickness: s.LayerThickness,
		Relief: s.Relief, Text: s.Text, Hanger: s.Hanger}
}

// ProjectState projects the composited pixels and features of the given project.
func ProjectState(s *project.State) *Scene {
	return Project(s.Composite(), ParamsOf(s))
}

// Project maps the composited pixel map and the decorative features to
// a scene. It is pure: the same input always yields an equal scene.
// Each color becomes one instanced box solid with one instance per pixel,
// on a grid centered at the origin with pitch MMScale. With relief
// enabled, the boxes are shortened and every pixel also gets a smaller
// cap box of the same color stacked on top.
func Project(px layers.Pixels, p Params) *Scene {
	sc := &Scene{GridW: p.GridW, GridH: p.GridH}
	mm, thick := p.MMScale, p.Thickness
	offX := float32(p.GridW) * mm / 2
	offZ := float32(p.GridH) * mm / 2

	bodyH := thick
	_, reliefH, capSize, reliefBody := p.Relief.Resolve(mm, thick)
	if p.Relief.Enabled {
		bodyH = reliefBody
	}

	byColor := map[string][]grid.Key{}
	for k, c := range px {
		byColor[c] = append(byColor[c], k)
	}
	cols := make([]string, 0, len(byColor))
	for c := range byColor {
		cols = append(cols, c)
	}
	slices.Sort(cols)

	for _, c := range cols {
		keys := byColor[c]
		slices.SortFunc(keys, func(a, b grid.Key) int {
			return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
		})
		mat := NewMaterial(c)
		body := &Solid{Name: "pixels", Shape: NewBox(mm, bodyH, mm), Material: mat}
		var caps *Solid
		if p.Relief.Enabled {
			caps = &Solid{Name: "relief", Shape: NewBox(capSize, reliefH, capSize), Material: mat}
		}
		for _, k := range keys {
			x := float32(k.X)*mm - offX + mm/2
			z := float32(k.Y)*mm - offZ + mm/2
			body.Instances = append(body.Instances, At(x, bodyH/2, z))
			if caps != nil {
				caps.Instances = append(caps.Instances, At(x, bodyH+reliefH/2, z))
			}
		}
		sc.Solids = append(sc.Solids, body)
		if caps != nil {
			sc.Solids = append(sc.Solids, caps)
		}
	}

	if sld := textSolid(p); sld != nil {
		sc.Solids = append(sc.Solids, sld)
	}
	sc.Solids = append(sc.Solids, hangerSolids(p)...)
	return sc
}

// textSolid returns the text solid, or nil if text is disabled or empty.
func textSolid(p Params) *Solid {
	t := p.Text
	if !t.Enabled || t.Content == "" {
		return nil
	}
	tx := NewText(t.Content, t.Size, t.Thickness)
	if tx.IsEmpty() {
		return nil
	}
	pose := Pose{
		Pos:  math32.Vec3(-tx.Width()/2+t.X*p.MMScale, p.Thickness, -tx.Height()/2+t.Y*p.MMScale),
		RotX: -math32.Pi / 2,
	}
	return &Solid{Name: "text", Shape: tx, Material: NewMaterial(t.Color), Instances: []Pose{pose}}
}

// hangerSolids returns the solids of the hanger, or nil if it is disabled.
// Unknown styles are projected as a ring.
func hangerSolids(p Params) []*Solid {
	h := p.Hanger
	if !h.Enabled {
		return nil
	}
	mm, thick := p.MMScale, p.Thickness
	tube := h.Thickness / 2
	depth := math32.Max(0.4, h.Thickness)
	hx, hz := h.X*mm, h.Y*mm
	mat := NewMaterial(h.Color)
	flat := Pose{Pos: math32.Vec3(hx, thick/2, hz), RotX: -math32.Pi / 2}
	extruded := Pose{Pos: math32.Vec3(hx, thick/2-depth/2, hz), RotX: -math32.Pi / 2}

	switch h.Style {
	case project.PixelSquare, project.PixelDiamond:
		outer := h.Radius * 2
		inner := math32.Max(0.2, outer-tube*2)
		out, hole := SquareRing(outer, inner)
		if h.Style == project.PixelDiamond {
			out, hole = DiamondRing(outer, inner)
		}
		return []*Solid{{Name: "hanger", Shape: &Extrusion{Outer: out, Hole: hole, Depth: depth}, Material: mat, Instances: []Pose{extruded}}}
	case project.Heart:
		out, hole := HeartRing(h.Radius * 0.9)
		extruded.RotZ = math32.Pi
		return []*Solid{{Name: "hanger", Shape: &Extrusion{Outer: out, Hole: hole, Depth: depth}, Material: mat, Instances: []Pose{extruded}}}
	case project.DoubleRing:
		innerR := math32.Max(tube+0.2, h.Radius-math32.Max(tube*2, 0.8))
		return []*Solid{
			{Name: "hanger", Shape: &Torus{Radius: h.Radius, Tube: tube, RadialSegs: 16, TubularSegs: 48}, Material: mat, Instances: []Pose{flat}},
			{Name: "hanger_inner", Shape: &Torus{Radius: innerR, Tube: tube, RadialSegs: 16, TubularSegs: 48}, Material: mat, Instances: []Pose{flat}},
		}
	}
	return []*Solid{{Name: "hanger", Shape: &Torus{Radius: h.Radius, Tube: tube, RadialSegs: 16, TubularSegs: 32}, Material: mat, Instances: []Pose{flat}}}
}

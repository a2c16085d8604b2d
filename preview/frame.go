// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview pushes projected scenes to connected viewers over
// websockets. A [Hub] is the renderer of an editor: every projection
// is encoded as a [Frame] and broadcast to all viewers.
package preview

import (
	"cogentcore.org/pixelstudio/math32"
	"cogentcore.org/pixelstudio/xyz"
)

// Frame is one projected scene, as sent to viewers.
type Frame struct {

	// Seq increases by one for every rendered scene.
	Seq uint64 `json:"seq"`

	GridW int `json:"gridW"`
	GridH int `json:"gridH"`

	// Min and Max are the bounds of the model, in mm.
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`

	Solids []Solid `json:"solids"`
}

// Solid is one solid of a [Frame].
type Solid struct {
	Name     string `json:"name"`
	Material string `json:"material"`
	Color    string `json:"color"`

	// Kind is the shape kind: box, torus, extrusion or text.
	Kind string `json:"kind"`

	// Size is the size of the local shape bounds.
	Size [3]float32 `json:"size"`

	Instances []Instance `json:"instances"`
}

// Instance is one pose of a [Solid].
type Instance struct {
	Pos  [3]float32 `json:"pos"`
	RotX float32    `json:"rotX,omitempty"`
	RotZ float32    `json:"rotZ,omitempty"`
}

func vec(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func kindOf(sh xyz.Shape) string {
	switch sh.(type) {
	case *xyz.Box:
		return "box"
	case *xyz.Torus:
		return "torus"
	case *xyz.Extrusion:
		return "extrusion"
	case *xyz.Text:
		return "text"
	}
	return "mesh"
}

// NewFrame returns the frame of the given scene.
func NewFrame(sc *xyz.Scene, seq uint64) *Frame {
	fr := &Frame{Seq: seq, GridW: sc.GridW, GridH: sc.GridH, Solids: []Solid{}}
	if !sc.IsEmpty() {
		bb := sc.BBox()
		fr.Min, fr.Max = vec(bb.Min), vec(bb.Max)
	}
	for _, sld := range sc.Solids {
		s := Solid{
			Name:     sld.Name,
			Material: sld.Material.Name,
			Color:    sld.Material.Color,
			Kind:     kindOf(sld.Shape),
		}
		if ms := sld.Shape.Mesh(); len(ms.Positions) > 0 {
			s.Size = vec(ms.BBox().Size())
		}
		for _, ps := range sld.Instances {
			s.Instances = append(s.Instances, Instance{Pos: vec(ps.Pos), RotX: ps.RotX, RotZ: ps.RotZ})
		}
		fr.Solids = append(fr.Solids, s)
	}
	return fr
}

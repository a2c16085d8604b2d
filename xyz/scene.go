// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the 3D model of a pixel project: a pure
// projection of the composited pixel map and the decorative features
// into a [Scene] of posed, colored solids, and the triangle meshes
// used by the export encoders. Coordinates are in mm, with Y up and
// grid rows running along +Z.
package xyz

import (
	"strconv"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/math32"
)

// Material is the surface of a solid, identified by its color.
type Material struct {

	// Name is mat_ followed by the hex digits of the color.
	Name string

	// Color is the "#rrggbb" color.
	Color string
}

// NewMaterial returns the material for the given color.
func NewMaterial(hex string) Material {
	return Material{Name: colors.MaterialName(hex), Color: hex}
}

// Pose is the placement of one solid instance: a rotation about Z,
// then about X, then a translation.
type Pose struct {
	Pos  math32.Vector3
	RotX float32
	RotZ float32
}

// At returns an unrotated pose at the given position.
func At(x, y, z float32) Pose {
	return Pose{Pos: math32.Vec3(x, y, z)}
}

// Matrix returns the transform of the pose.
func (ps Pose) Matrix() *math32.Matrix4 {
	return math32.TranslationRotationXZ(ps.Pos, ps.RotX, ps.RotZ)
}

// Solid is one shape with one material, placed at one or more poses.
// The pixel boxes of each color are a single instanced solid.
type Solid struct {

	// Name identifies the solid, e.g. "pixels", "relief", "text", "hanger".
	Name string

	// Shape is the local geometry shared by all instances.
	Shape Shape

	// Material is the surface of all instances.
	Material Material

	// Instances are the poses of the instances.
	Instances []Pose
}

// Scene is the projected model: a list of solids.
type Scene struct {

	// GridW and GridH are the size of the projected grid, in cells.
	GridW, GridH int

	// Solids are the solids, pixels first, then text, then hanger.
	Solids []*Solid
}

// IsEmpty returns whether the scene has no instances.
func (sc *Scene) IsEmpty() bool {
	return sc.NumInstances() == 0
}

// NumInstances returns the total number of solid instances.
func (sc *Scene) NumInstances() int {
	n := 0
	for _, sld := range sc.Solids {
		n += len(sld.Instances)
	}
	return n
}

// Materials returns the distinct materials in order of first use.
func (sc *Scene) Materials() []Material {
	var mats []Material
	seen := map[string]bool{}
	for _, sld := range sc.Solids {
		if seen[sld.Material.Name] {
			continue
		}
		seen[sld.Material.Name] = true
		mats = append(mats, sld.Material)
	}
	return mats
}

// Part is one posed solid instance as a world-space mesh.
type Part struct {
	Name     string
	Material Material
	Mesh     *Mesh
}

// Meshes triangulates every solid, expanding instances into one
// world-space [Part] each. Each shape is triangulated once per solid.
func (sc *Scene) Meshes() []*Part {
	var parts []*Part
	for _, sld := range sc.Solids {
		if len(sld.Instances) == 0 {
			continue
		}
		local := sld.Shape.Mesh()
		for i, ps := range sld.Instances {
			name := sld.Name
			if len(sld.Instances) > 1 {
				name += "_" + strconv.Itoa(i)
			}
			parts = append(parts, &Part{Name: name, Material: sld.Material, Mesh: local.Transform(ps.Matrix())})
		}
	}
	return parts
}

// BBox returns the bounding box of all parts.
func (sc *Scene) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range sc.Meshes() {
		bb.ExpandByBox(p.Mesh.BBox())
	}
	return bb
}

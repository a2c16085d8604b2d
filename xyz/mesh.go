// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/pixelstudio/math32"
)

// Mesh is an indexed triangle mesh with per-vertex normals.
// Triangles are wound counter-clockwise when seen from outside.
type Mesh struct {

	// Positions are the vertex positions.
	Positions []math32.Vector3

	// Normals are the unit vertex normals, one per position.
	Normals []math32.Vector3

	// Indices hold three vertex indices per triangle.
	Indices []uint32
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the positions of the i-th triangle.
func (ms *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	return ms.Positions[ms.Indices[3*i]], ms.Positions[ms.Indices[3*i+1]], ms.Positions[ms.Indices[3*i+2]]
}

// addVertex appends a vertex and returns its index.
func (ms *Mesh) addVertex(p, n math32.Vector3) uint32 {
	ms.Positions = append(ms.Positions, p)
	ms.Normals = append(ms.Normals, n)
	return uint32(len(ms.Positions) - 1)
}

// AddQuad adds the flat quad a, b, c, d facing direction n, as two
// triangles. The corner order is reversed if needed so that the quad
// winds counter-clockwise around n.
func (ms *Mesh) AddQuad(a, b, c, d, n math32.Vector3) {
	if b.Sub(a).Cross(c.Sub(a)).Dot(n) < 0 {
		a, b, c, d = d, c, b, a
	}
	i := ms.addVertex(a, n)
	ms.addVertex(b, n)
	ms.addVertex(c, n)
	ms.addVertex(d, n)
	ms.Indices = append(ms.Indices, i, i+1, i+2, i, i+2, i+3)
}

// Append adds all triangles of the other mesh.
func (ms *Mesh) Append(o *Mesh) {
	off := uint32(len(ms.Positions))
	ms.Positions = append(ms.Positions, o.Positions...)
	ms.Normals = append(ms.Normals, o.Normals...)
	for _, ix := range o.Indices {
		ms.Indices = append(ms.Indices, ix+off)
	}
}

// Transform returns a copy of the mesh transformed by the given rigid
// transform (rotation and translation only).
func (ms *Mesh) Transform(m *math32.Matrix4) *Mesh {
	nm := &Mesh{
		Positions: make([]math32.Vector3, len(ms.Positions)),
		Normals:   make([]math32.Vector3, len(ms.Normals)),
		Indices:   append([]uint32(nil), ms.Indices...),
	}
	for i, p := range ms.Positions {
		nm.Positions[i] = p.MulMatrix4AsPoint(m)
	}
	for i, n := range ms.Normals {
		nm.Normals[i] = n.MulMatrix4AsVector(m).Normal()
	}
	return nm
}

// BBox returns the bounding box of the mesh.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range ms.Positions {
		bb.ExpandByPoint(p)
	}
	return bb
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"encoding/binary"
	"io"

	"cogentcore.org/pixelstudio/math32"
	"cogentcore.org/pixelstudio/xyz"
)

// WriteSTL writes the scene as binary STL: an 80-byte header, the
// triangle count, and one facet (normal, three vertices, attribute)
// per triangle, all little-endian.
func WriteSTL(w io.Writer, sc *xyz.Scene) error {
	parts := sc.Meshes()
	n := 0
	for _, p := range parts {
		n += p.Mesh.NumTriangles()
	}
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], "binary STL written by pixelstudio")
	bw.Write(header[:])
	binary.Write(bw, binary.LittleEndian, uint32(n))
	var facet [12]float32
	for _, p := range parts {
		for i := range p.Mesh.NumTriangles() {
			a, b, c := p.Mesh.Triangle(i)
			nm := b.Sub(a).Cross(c.Sub(a)).Normal()
			for j, v := range []math32.Vector3{nm, a, b, c} {
				facet[3*j], facet[3*j+1], facet[3*j+2] = v.X, v.Y, v.Z
			}
			binary.Write(bw, binary.LittleEndian, facet)
			binary.Write(bw, binary.LittleEndian, uint16(0))
		}
	}
	return bw.Flush()
}

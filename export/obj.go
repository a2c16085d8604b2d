// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/xyz"
)

func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// WriteOBJ writes the scene as a Wavefront OBJ file referencing the
// material library <name>.mtl, with one object per solid instance.
func WriteOBJ(w io.Writer, sc *xyz.Scene, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "mtllib %s.mtl\n", name)
	off := 1
	for _, p := range sc.Meshes() {
		ms := p.Mesh
		fmt.Fprintf(bw, "o %s\n", p.Name)
		for _, v := range ms.Positions {
			fmt.Fprintf(bw, "v %s %s %s\n", ff(v.X), ff(v.Y), ff(v.Z))
		}
		for _, n := range ms.Normals {
			fmt.Fprintf(bw, "vn %s %s %s\n", ff(n.X), ff(n.Y), ff(n.Z))
		}
		fmt.Fprintf(bw, "usemtl %s\n", p.Material.Name)
		for i := 0; i+2 < len(ms.Indices); i += 3 {
			a, b, c := int(ms.Indices[i])+off, int(ms.Indices[i+1])+off, int(ms.Indices[i+2])+off
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		off += len(ms.Positions)
	}
	return bw.Flush()
}

// WriteMTL writes one material block per material: its name, its
// diffuse sRGB color and full opacity.
func WriteMTL(w io.Writer, mats []xyz.Material) error {
	bw := bufio.NewWriter(w)
	for _, m := range mats {
		r, g, b := colors.Float(m.Color)
		fmt.Fprintf(bw, "newmtl %s\nKd %s %s %s\nd 1.0\n\n", m.Name, ff(r), ff(g), ff(b))
	}
	return bw.Flush()
}

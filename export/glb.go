// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/math32"
	"cogentcore.org/pixelstudio/xyz"
)

// glTF constants.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	chunkJSON    = 0x4E4F534A
	chunkBIN     = 0x004E4942
	compFloat    = 5126
	compUint32   = 5125
	targetArray  = 34962
	targetIndex  = 34963
	modeTriangle = 4
)

// Roughness is the roughness of all exported materials.
const Roughness = 0.3

type gltf struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Materials   []gltfMaterial   `json:"materials"`
	Accessors   []gltfAccessor   `json:"accessors"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Buffers     []gltfBuffer     `json:"buffers"`
}

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Name string `json:"name"`
	Mesh int    `json:"mesh"`
}

type gltfMesh struct {
	Name       string          `json:"name"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   int            `json:"material"`
	Mode       int            `json:"mode"`
}

type gltfMaterial struct {
	Name string  `json:"name"`
	PBR  gltfPBR `json:"pbrMetallicRoughness"`
}

type gltfPBR struct {
	BaseColorFactor [4]float32 `json:"baseColorFactor"`
	MetallicFactor  float32    `json:"metallicFactor"`
	RoughnessFactor float32    `json:"roughnessFactor"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

type gltfBuffer struct {
	ByteLength int `json:"byteLength"`
}

// glbBuilder accumulates the binary buffer and the document.
type glbBuilder struct {
	doc gltf
	bin bytes.Buffer
}

func (gb *glbBuilder) view(data any, target int) int {
	for gb.bin.Len()%4 != 0 {
		gb.bin.WriteByte(0)
	}
	off := gb.bin.Len()
	binary.Write(&gb.bin, binary.LittleEndian, data)
	gb.doc.BufferViews = append(gb.doc.BufferViews, gltfBufferView{ByteOffset: off, ByteLength: gb.bin.Len() - off, Target: target})
	return len(gb.doc.BufferViews) - 1
}

func (gb *glbBuilder) vec3s(vs []math32.Vector3, bounds bool) int {
	flat := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	acc := gltfAccessor{BufferView: gb.view(flat, targetArray), ComponentType: compFloat, Count: len(vs), Type: "VEC3"}
	if bounds {
		bb := math32.B3Empty()
		for _, v := range vs {
			bb.ExpandByPoint(v)
		}
		acc.Min = []float32{bb.Min.X, bb.Min.Y, bb.Min.Z}
		acc.Max = []float32{bb.Max.X, bb.Max.Y, bb.Max.Z}
	}
	gb.doc.Accessors = append(gb.doc.Accessors, acc)
	return len(gb.doc.Accessors) - 1
}

func (gb *glbBuilder) indices(idx []uint32) int {
	acc := gltfAccessor{BufferView: gb.view(idx, targetIndex), ComponentType: compUint32, Count: len(idx), Type: "SCALAR"}
	gb.doc.Accessors = append(gb.doc.Accessors, acc)
	return len(gb.doc.Accessors) - 1
}

// WriteGLB writes the scene as a binary glTF 2.0 file, with one node
// and mesh per solid instance and one material per color.
func WriteGLB(w io.Writer, sc *xyz.Scene) error {
	gb := &glbBuilder{}
	gb.doc.Asset = gltfAsset{Version: "2.0", Generator: "pixelstudio"}
	matIndex := map[string]int{}
	for i, m := range sc.Materials() {
		r, g, b := colors.Linear(m.Color)
		gb.doc.Materials = append(gb.doc.Materials, gltfMaterial{
			Name: m.Name,
			PBR:  gltfPBR{BaseColorFactor: [4]float32{r, g, b, 1}, RoughnessFactor: Roughness},
		})
		matIndex[m.Name] = i
	}
	root := gltfScene{Nodes: []int{}}
	for _, p := range sc.Meshes() {
		if p.Mesh.NumTriangles() == 0 {
			continue
		}
		prim := gltfPrimitive{
			Attributes: map[string]int{
				"POSITION": gb.vec3s(p.Mesh.Positions, true),
				"NORMAL":   gb.vec3s(p.Mesh.Normals, false),
			},
			Indices:  gb.indices(p.Mesh.Indices),
			Material: matIndex[p.Material.Name],
			Mode:     modeTriangle,
		}
		gb.doc.Meshes = append(gb.doc.Meshes, gltfMesh{Name: p.Name, Primitives: []gltfPrimitive{prim}})
		gb.doc.Nodes = append(gb.doc.Nodes, gltfNode{Name: p.Name, Mesh: len(gb.doc.Meshes) - 1})
		root.Nodes = append(root.Nodes, len(gb.doc.Nodes)-1)
	}
	for gb.bin.Len()%4 != 0 {
		gb.bin.WriteByte(0)
	}
	gb.doc.Scenes = []gltfScene{root}
	gb.doc.Buffers = []gltfBuffer{{ByteLength: gb.bin.Len()}}

	js, err := json.Marshal(gb.doc)
	if err != nil {
		return err
	}
	for len(js)%4 != 0 {
		js = append(js, ' ')
	}
	total := 12 + 8 + len(js) + 8 + gb.bin.Len()
	if total > math.MaxUint32 {
		return io.ErrShortBuffer
	}
	var out bytes.Buffer
	out.Grow(total)
	binary.Write(&out, binary.LittleEndian, [3]uint32{glbMagic, glbVersion, uint32(total)})
	binary.Write(&out, binary.LittleEndian, [2]uint32{uint32(len(js)), chunkJSON})
	out.Write(js)
	binary.Write(&out, binary.LittleEndian, [2]uint32{uint32(gb.bin.Len()), chunkBIN})
	out.Write(gb.bin.Bytes())
	_, err = w.Write(out.Bytes())
	return err
}

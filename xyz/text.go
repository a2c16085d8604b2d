// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"sync"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextRasterEm is the number of raster cells per em used to voxelize text.
const TextRasterEm = 24

// textFont is the bundled Go Regular font.
var textFont = sync.OnceValue(func() *opentype.Font {
	return errors.Must1(opentype.Parse(goregular.TTF))
})

// run is a horizontal run of inked raster cells [X0, X1) in row Y,
// with rows counted downward from the top of the ink box.
type run struct {
	X0, X1, Y int
}

// Text is a line of text rendered with the bundled font, voxelized into
// boxes and extruded along +Z from 0 to Depth. It lies in the XY plane
// with the baseline on the X axis, starting at the origin.
type Text struct {

	// Content is the text.
	Content string

	// Size is the font size (em height) in model units.
	Size float32

	// Depth is the extrusion depth.
	Depth float32

	// Min is the lower left corner of the ink box, relative to the origin.
	Min math32.Vector2

	// Max is the upper right corner of the ink box, relative to the origin.
	Max math32.Vector2

	runs []run
}

// NewText returns the voxelized text shape for the given content.
func NewText(content string, size, depth float32) *Text {
	tx := &Text{Content: content, Size: size, Depth: depth}
	tx.rasterize()
	return tx
}

// cell returns the size of one raster cell in model units.
func (tx *Text) cell() float32 {
	return tx.Size / TextRasterEm
}

// Width returns the width of the ink box.
func (tx *Text) Width() float32 {
	return tx.Max.X - tx.Min.X
}

// Height returns the height of the ink box.
func (tx *Text) Height() float32 {
	return tx.Max.Y - tx.Min.Y
}

// IsEmpty returns whether the text has no ink.
func (tx *Text) IsEmpty() bool {
	return len(tx.runs) == 0
}

func (tx *Text) rasterize() {
	if tx.Content == "" || tx.Size <= 0 {
		return
	}
	face, err := opentype.NewFace(textFont(), &opentype.FaceOptions{Size: TextRasterEm, DPI: 72, Hinting: font.HintingNone})
	if errors.Log(err) != nil {
		return
	}
	defer face.Close()
	bounds, _ := font.BoundString(face, tx.Content)
	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if x1 <= x0 || y1 <= y0 {
		return
	}
	img := image.NewAlpha(image.Rect(0, 0, x1-x0, y1-y0))
	dr := &font.Drawer{Dst: img, Src: image.Opaque, Face: face, Dot: fixed.P(-x0, -y0)}
	dr.DrawString(tx.Content)

	k := tx.cell()
	tx.Min = math32.Vec2(float32(x0)*k, -float32(y1)*k)
	tx.Max = math32.Vec2(float32(x1)*k, -float32(y0)*k)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := range h {
		start := -1
		for x := 0; x <= w; x++ {
			inked := x < w && img.AlphaAt(x, y).A >= 128
			switch {
			case inked && start < 0:
				start = x
			case !inked && start >= 0:
				tx.runs = append(tx.runs, run{X0: start + x0, X1: x + x0, Y: y + y0})
				start = -1
			}
		}
	}
}

// Mesh implements [Shape].
func (tx *Text) Mesh() *Mesh {
	ms := &Mesh{}
	k := tx.cell()
	for _, r := range tx.runs {
		bx := NewBox(float32(r.X1-r.X0)*k, k, tx.Depth)
		// raster rows grow downward; model Y grows upward from the baseline
		c := math32.Vec3(float32(r.X0+r.X1)/2*k, -(float32(r.Y)+0.5)*k, tx.Depth/2)
		m := &math32.Matrix4{}
		m.SetTranslation(c.X, c.Y, c.Z)
		ms.Append(bx.Mesh().Transform(m))
	}
	return ms
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/pixelstudio/colors"
	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/layers"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

// AlphaThreshold is the minimum alpha of an imported pixel.
const AlphaThreshold = 128

// Sniff returns the MIME type of the given data, or "" if unknown.
func Sniff(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// IsImage returns whether the data starts like an image file.
func IsImage(data []byte) bool {
	return filetype.IsImage(data)
}

// Import decodes the image data and scales it to the given grid size
// with nearest-neighbor sampling. Pixels with alpha below
// [AlphaThreshold] stay empty.
func Import(data []byte, size grid.Size) (layers.Pixels, error) {
	if !IsImage(data) {
		return nil, ErrNotImage
	}
	im, _, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("imagex: invalid grid size %dx%d", size.W, size.H)
	}
	return ToPixels(im, size), nil
}

// ToPixels scales the image to the given grid size with
// nearest-neighbor sampling and returns its opaque cells.
func ToPixels(im image.Image, size grid.Size) layers.Pixels {
	dst := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), im, im.Bounds(), draw.Src, nil)
	px := layers.Pixels{}
	for y := range size.H {
		for x := range size.W {
			c := dst.NRGBAAt(x, y)
			if c.A < AlphaThreshold {
				continue
			}
			px[grid.K(x, y)] = colors.AsHex(color.NRGBA{c.R, c.G, c.B, 255})
		}
	}
	return px
}

// Render returns the pixel map as an image with one image pixel per
// cell, upscaled so that each cell is cell pixels wide. Empty cells
// are transparent.
func Render(px layers.Pixels, size grid.Size, cell int) image.Image {
	im := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
	for k, hex := range px {
		if !size.Contains(k) {
			continue
		}
		c, err := colors.FromHex(hex)
		if err != nil {
			continue
		}
		im.SetNRGBA(k.X, k.Y, color.NRGBA{c.R, c.G, c.B, 255})
	}
	if cell <= 1 {
		return im
	}
	return transform.Resize(im, size.W*cell, size.H*cell, transform.NearestNeighbor)
}

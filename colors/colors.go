// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the sRGB hex color handling used
// by pixel studio: parsing, normalization, material naming,
// the default palette and the recent color list.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"
)

// MaxRecent is the maximum number of recent colors remembered.
const MaxRecent = 12

// DefaultPalette returns the default palette presets.
func DefaultPalette() []string {
	return []string{"#3b82f6", "#ef4444", "#22c55e", "#eab308", "#f97316", "#a855f7", "#0f172a", "#ffffff"}
}

// FromHex parses the given hex color string
// and returns the resulting color. It accepts
// the #RGB, #RRGGBB and #RRGGBBAA forms, with or
// without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the given color as a lowercase #rrggbb hex string.
// Alpha is dropped: pixel colors are always opaque.
func AsHex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// Normalize returns the canonical lowercase #rrggbb form of the given
// hex color string.
func Normalize(hex string) (string, error) {
	c, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	return AsHex(c), nil
}

// MaterialName returns the material name used for the given color
// in the 3D model and in OBJ/MTL export: mat_ followed by the hex
// digits without the leading #.
func MaterialName(hex string) string {
	return "mat_" + strings.TrimPrefix(hex, "#")
}

// PushRecent returns the recent color list with the given color
// moved to the front, without duplicates and at most [MaxRecent] long.
func PushRecent(recent []string, hex string) []string {
	if hex == "" {
		return recent
	}
	res := make([]string, 0, MaxRecent+1)
	res = append(res, hex)
	for _, c := range recent {
		if c != hex {
			res = append(res, c)
		}
	}
	if len(res) > MaxRecent {
		res = res[:MaxRecent]
	}
	return slices.Clip(res)
}

// Float returns the sRGB components of the given hex color as values in [0, 1].
// Invalid colors return black.
func Float(hex string) (r, g, b float32) {
	c, err := FromHex(hex)
	if err != nil {
		return 0, 0, 0
	}
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Linear returns the linear light components of the given sRGB hex color,
// as required by glTF material base colors.
func Linear(hex string) (r, g, b float32) {
	r, g, b = Float(hex)
	return toLinear(r), toLinear(g), toLinear(b)
}

func toLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

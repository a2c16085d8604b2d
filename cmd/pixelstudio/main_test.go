// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/pixelstudio/grid"
	"cogentcore.org/pixelstudio/preview"
	"cogentcore.org/pixelstudio/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	code := run(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func writeProject(t *testing.T, dir string) string {
	t.Helper()
	s := project.New()
	s.Name = "Star"
	s.Layers.Active().Set(grid.K(3, 4), "#ff0000")
	b, err := s.MarshalJSON()
	require.NoError(t, err)
	file := filepath.Join(dir, "star.json")
	require.NoError(t, os.WriteFile(file, b, 0o644))
	return file
}

func TestUsage(t *testing.T) {
	code, _, errs := runCmd(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "Usage: pixelstudio")

	code, _, _ = runCmd(t, "bogus", "x")
	assert.Equal(t, 2, code)
	code, _, _ = runCmd(t, "--format", "fbx", "export", "x")
	assert.Equal(t, 2, code)
	code, _, _ = runCmd(t, "--help")
	assert.Equal(t, 0, code)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	file := writeProject(t, dir)
	out := filepath.Join(dir, "out")

	code, stdout, errs := runCmd(t, "-o", out, "export", file)
	require.Equal(t, 0, code, errs)
	assert.Equal(t, filepath.Join(out, "Star_all.zip")+"\n", stdout)

	code, _, errs = runCmd(t, "-o", out, "-f", "stl", "export", file)
	require.Equal(t, 0, code, errs)
	st, err := os.Stat(filepath.Join(out, "Star.stl"))
	require.NoError(t, err)
	assert.Equal(t, int64(84+12*50), st.Size())

	code, _, _ = runCmd(t, "export", filepath.Join(dir, "missing.json"))
	assert.Equal(t, 1, code)

	code, _, errs = runCmd(t, "--drive", "-o", out, "export", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "not configured")
}

func TestEmptyExport(t *testing.T) {
	dir := t.TempDir()
	b, err := project.New().MarshalJSON()
	require.NoError(t, err)
	file := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(file, b, 0o644))
	code, _, errs := runCmd(t, "-o", dir, "export", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "empty canvas")
}

func TestImportPreview(t *testing.T) {
	dir := t.TempDir()
	im := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	im.SetNRGBA(5, 6, color.NRGBA{0, 0, 255, 255})
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, im))
	imgFile := filepath.Join(dir, "dot.png")
	require.NoError(t, os.WriteFile(imgFile, b.Bytes(), 0o644))

	code, _, errs := runCmd(t, "export", imgFile)
	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "use import")

	code, _, errs = runCmd(t, "-o", dir, "import", imgFile)
	require.Equal(t, 0, code, errs)
	data, err := os.ReadFile(filepath.Join(dir, "dot.json"))
	require.NoError(t, err)
	s := project.New()
	require.NoError(t, s.Import(data, "x"))
	assert.Equal(t, "dot", s.Name)
	assert.Equal(t, "#0000ff", s.Composite()[grid.K(5, 6)])
	assert.Len(t, s.Composite(), 1)

	code, _, errs = runCmd(t, "-o", dir, "--cell", "2", "preview", filepath.Join(dir, "dot.json"))
	require.Equal(t, 0, code, errs)
	f, err := os.Open(filepath.Join(dir, "dot.png"))
	require.NoError(t, err)
	defer f.Close()
	prev, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), prev.Bounds())
}

func TestServeHandler(t *testing.T) {
	dir := t.TempDir()
	file := writeProject(t, dir)
	a := &app{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}, cell: 1}
	var err error
	a.cfg, err = configFor(t)
	require.NoError(t, err)
	s, err := a.load(file)
	require.NoError(t, err)

	sv := &server{ed: a.newEditor(s), hub: preview.NewHub(), app: a}
	h := sv.handler()
	rec := httpGet(h, "/")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "/ws")
	rec = httpGet(h, "/preview.png")
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, 404, httpGet(h, "/other").Code)

	s.Layers.Active().Clear()
	require.NoError(t, os.WriteFile(file, mustJSON(t, s), 0o644))
	sv.reload(file)
	assert.Empty(t, sv.ed.State.Composite())
}

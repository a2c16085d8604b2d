// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export encodes a projected model and its project into the
// download formats: binary STL, Wavefront OBJ with MTL materials,
// binary glTF (GLB), the JSON project file, and zip bundles of these.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/project"
	"cogentcore.org/pixelstudio/xyz"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyCanvas is returned when exporting a project with no visible pixels.
var ErrEmptyCanvas = errors.New("export: empty canvas")

// Formats are the export formats.
type Formats string

const (
	JSON Formats = "json"
	STL  Formats = "stl"
	OBJ  Formats = "obj"
	GLB  Formats = "glb"

	// All is a zip bundle of every format.
	All Formats = "all"
)

// FormatsValues returns all export formats.
func FormatsValues() []Formats {
	return []Formats{JSON, STL, OBJ, GLB, All}
}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Formats, error) {
	f := Formats(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range FormatsValues() {
		if v == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// File is an encoded export ready to download or upload.
type File struct {

	// Name is the file name.
	Name string

	// MimeType is the MIME type of the data.
	MimeType string

	// Data is the encoded content.
	Data []byte
}

// Export encodes the given project in the given format. OBJ exports are
// a zip of the .obj and .mtl files, and [All] is the zip of every format.
// It returns [ErrEmptyCanvas] if the project has no visible pixels.
func Export(ctx context.Context, s *project.State, format Formats) (*File, error) {
	if len(s.Composite()) == 0 {
		return nil, ErrEmptyCanvas
	}
	name := s.FileName()
	switch format {
	case All:
		return Bundle(ctx, s)
	case JSON:
		var b bytes.Buffer
		if err := WriteJSON(&b, s); err != nil {
			return nil, err
		}
		return &File{Name: name + ".json", MimeType: "application/json", Data: b.Bytes()}, nil
	}
	sc := xyz.ProjectState(s)
	switch format {
	case STL:
		var b bytes.Buffer
		if err := WriteSTL(&b, sc); err != nil {
			return nil, err
		}
		return &File{Name: name + ".stl", MimeType: "application/octet-stream", Data: b.Bytes()}, nil
	case GLB:
		var b bytes.Buffer
		if err := WriteGLB(&b, sc); err != nil {
			return nil, err
		}
		return &File{Name: name + ".glb", MimeType: "model/gltf-binary", Data: b.Bytes()}, nil
	case OBJ:
		var obj, mtl bytes.Buffer
		if err := WriteOBJ(&obj, sc, name); err != nil {
			return nil, err
		}
		if err := WriteMTL(&mtl, sc.Materials()); err != nil {
			return nil, err
		}
		data, err := Zip([]*File{{Name: name + ".obj", Data: obj.Bytes()}, {Name: name + ".mtl", Data: mtl.Bytes()}})
		if err != nil {
			return nil, err
		}
		return &File{Name: name + "_obj.zip", MimeType: "application/zip", Data: data}, nil
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}

// Bundle encodes every format concurrently and returns them zipped
// as <name>_all.zip.
func Bundle(ctx context.Context, s *project.State) (*File, error) {
	if len(s.Composite()) == 0 {
		return nil, ErrEmptyCanvas
	}
	name := s.FileName()
	sc := xyz.ProjectState(s)
	files := []*File{
		{Name: name + ".json"}, {Name: name + ".stl"}, {Name: name + ".glb"},
		{Name: name + ".obj"}, {Name: name + ".mtl"},
	}
	writers := []func(w io.Writer) error{
		func(w io.Writer) error { return WriteJSON(w, s) },
		func(w io.Writer) error { return WriteSTL(w, sc) },
		func(w io.Writer) error { return WriteGLB(w, sc) },
		func(w io.Writer) error { return WriteOBJ(w, sc, name) },
		func(w io.Writer) error { return WriteMTL(w, sc.Materials()) },
	}
	// the JSON encoder reads the state, so it runs before the others start
	var jb bytes.Buffer
	if err := writers[0](&jb); err != nil {
		return nil, err
	}
	files[0].Data = jb.Bytes()
	g, ctx := errgroup.WithContext(ctx)
	for i := 1; i < len(files); i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var b bytes.Buffer
			if err := writers[i](&b); err != nil {
				return fmt.Errorf("export: %s: %w", files[i].Name, err)
			}
			files[i].Data = b.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	data, err := Zip(files)
	if err != nil {
		return nil, err
	}
	slog.Debug("export: bundled", "name", name, "bytes", len(data))
	return &File{Name: name + "_all.zip", MimeType: "application/zip", Data: data}, nil
}

// WriteJSON writes the project file of the given project.
func WriteJSON(w io.Writer, s *project.State) error {
	return json.NewEncoder(w).Encode(s.File())
}

// Zip returns a zip archive of the given files.
func Zip(files []*File) ([]byte, error) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

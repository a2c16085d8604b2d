// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"context"
	"fmt"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/drive"
	"cogentcore.org/pixelstudio/export"
	"cogentcore.org/pixelstudio/imagex"
	"cogentcore.org/pixelstudio/layers"
)

// Import replaces the project with the given project file. The name
// falls back to fallbackName when the file has none. A malformed file
// is reported to the user and leaves the project unchanged.
func (ed *Editor) Import(data []byte, fallbackName string) error {
	ed.Cancel()
	if err := ed.State.Import(data, fallbackName); err != nil {
		ed.alert("Could not import project", err)
		return err
	}
	ed.commit("Import")
	return nil
}

// ImportImage scales the given image onto the grid and adds it as a
// new active layer named name.
func (ed *Editor) ImportImage(data []byte, name string) (*layers.Layer, error) {
	ed.Cancel()
	px, err := imagex.Import(data, ed.State.Size())
	if err != nil {
		ed.alert("Could not import image", err)
		return nil, err
	}
	ly := ed.State.Layers.Add(name)
	ly.SetPixels(px)
	ed.commit("Import image")
	return ly, nil
}

// Export encodes the project in the given format. An empty canvas is
// reported to the user.
func (ed *Editor) Export(ctx context.Context, format export.Formats) (*export.File, error) {
	f, err := export.Export(ctx, ed.State, format)
	if err != nil {
		if errors.Is(err, export.ErrEmptyCanvas) {
			ed.alert("Nothing to export: the canvas is empty", nil)
		} else {
			ed.alert("Export failed", err)
		}
		return nil, err
	}
	return f, nil
}

// Upload exports the project in the given format and uploads it to
// [Editor.FolderID]. Without an uploader it reports that only local
// download is available.
func (ed *Editor) Upload(ctx context.Context, format export.Formats) (*drive.File, error) {
	if ed.Uploader == nil {
		ed.alert("Cloud upload is not configured; download the file instead", nil)
		return nil, drive.ErrNotConfigured
	}
	f, err := ed.Export(ctx, format)
	if err != nil {
		return nil, err
	}
	df, err := ed.Uploader.Upload(ctx, f.Name, f.Data, f.MimeType, ed.FolderID)
	if err != nil {
		err = fmt.Errorf("upload %s: %w", f.Name, err)
		ed.alert("Upload failed", err)
		return nil, err
	}
	return df, nil
}

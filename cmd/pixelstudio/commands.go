// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pixelstudio/drive"
	"cogentcore.org/pixelstudio/editor"
	"cogentcore.org/pixelstudio/imagex"
	"cogentcore.org/pixelstudio/project"
	"github.com/fsnotify/fsnotify"
)

// baseName returns the file name without directory and extension.
func baseName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}

// load reads a project file on top of a new project with the settings applied.
func (a *app) load(file string) (*project.State, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if imagex.IsImage(data) {
		return nil, fmt.Errorf("%s is a %s image; use import", file, imagex.Sniff(data))
	}
	s := a.cfg.NewProject()
	if err := s.Import(data, baseName(file)); err != nil {
		return nil, err
	}
	return s, nil
}

// newEditor returns an editor reporting alerts on stderr.
func (a *app) newEditor(s *project.State) *editor.Editor {
	ed := editor.New(s)
	ed.History.Max = a.cfg.HistoryDepth
	ed.Alert = func(msg string) {
		fmt.Fprintln(a.stderr, msg)
	}
	return ed
}

func (a *app) write(name string, data []byte) error {
	if err := os.MkdirAll(a.out, 0o755); err != nil {
		return err
	}
	path := filepath.Join(a.out, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

func (a *app) export(ctx context.Context, file string) error {
	s, err := a.load(file)
	if err != nil {
		return err
	}
	ed := a.newEditor(s)
	f, err := ed.Export(ctx, a.format)
	if err != nil {
		return err
	}
	if err := a.write(f.Name, f.Data); err != nil {
		return err
	}
	if !a.drive {
		return nil
	}
	up, err := drive.Open(ctx, a.cfg.DriveSettings())
	if err != nil {
		return err
	}
	ed.Uploader = up
	ed.FolderID = a.folder
	if ed.FolderID == "" {
		ed.FolderID = a.cfg.Drive.FolderID
	}
	df, err := ed.Upload(ctx, a.format)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "uploaded %s %s\n", df.Name, df.WebViewLink)
	return nil
}

func (a *app) preview(file string) error {
	s, err := a.load(file)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := imagex.Write(imagex.Render(s.Composite(), s.Size(), a.cell), &b, imagex.PNG); err != nil {
		return err
	}
	return a.write(s.FileName()+".png", b.Bytes())
}

func (a *app) importImage(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	s := a.cfg.NewProject()
	s.Name = project.CleanName(baseName(file))
	ed := a.newEditor(s)
	if _, err := ed.ImportImage(data, "Image"); err != nil {
		return err
	}
	b, err := ed.State.MarshalJSON()
	if err != nil {
		return err
	}
	return a.write(s.FileName()+".json", b)
}

// watchFile calls fun whenever the file is written, until the context
// is done. The directory is watched so that editors that save by
// renaming a new file into place are seen.
func watchFile(ctx context.Context, file string, fun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("file changed", "op", event.Op)
			fun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "err", err)
		}
	}
}

func (a *app) watch(ctx context.Context, file string) error {
	if err := a.export(ctx, file); err != nil {
		return err
	}
	return watchFile(ctx, file, func() {
		if err := a.export(ctx, file); err != nil {
			slog.Error("export failed", "file", file, "err", err)
		}
	})
}

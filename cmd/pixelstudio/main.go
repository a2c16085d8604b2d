// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pixelstudio exports, previews and serves pixel studio projects.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/pixelstudio/base/logx"
	"cogentcore.org/pixelstudio/config"
	"cogentcore.org/pixelstudio/export"
	"github.com/spf13/pflag"
)

const usage = `Usage: pixelstudio [flags] <command> <file>

Commands:
  export <project.json>   write the project in the --format format to --out
  preview <project.json>  write a PNG of the composited pixels to --out
  import <image>          write a new project made from an image to --out
  watch <project.json>    export again whenever the project file is written
  serve <project.json>    serve a live 3D preview at --addr

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// app holds the settings of one invocation.
type app struct {
	cfg    *config.Config
	format export.Formats
	out    string
	drive  bool
	folder string
	addr   string
	cell   int

	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("pixelstudio", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		cfgFile  string
		format   string
		vv, v, q bool
		a        = &app{stdout: stdout, stderr: stderr}
	)
	fs.StringVar(&cfgFile, "config", config.DefaultFile, "settings file")
	fs.StringVarP(&format, "format", "f", string(export.All), "export format: json, stl, obj, glb or all")
	fs.StringVarP(&a.out, "out", "o", ".", "output directory")
	fs.BoolVar(&a.drive, "drive", false, "also upload exports to Google Drive")
	fs.StringVar(&a.folder, "folder", "", "Drive folder id (default from settings)")
	fs.StringVar(&a.addr, "addr", "localhost:8080", "preview server address")
	fs.IntVar(&a.cell, "cell", 16, "preview pixels per cell")
	fs.BoolVar(&vv, "vv", false, "debug output")
	fs.BoolVarP(&v, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&q, "quiet", "q", false, "only print errors")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	logx.UserLevel = logx.LevelFromFlags(vv, v, q)
	slog.SetDefault(slog.New(logx.NewHandler(stderr)))

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	a.format = f
	a.cfg, err = config.Open(cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cmd, file := rest[0], rest[1]
	switch cmd {
	case "export":
		err = a.export(ctx, file)
	case "preview":
		err = a.preview(file)
	case "import":
		err = a.importImage(file)
	case "watch":
		err = a.watch(ctx, file)
	case "serve":
		err = a.serve(ctx, file)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "pixelstudio %s: %v\n", cmd, err)
		return 1
	}
	return 0
}

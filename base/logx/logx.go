// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger
// for pixel studio, with a user-selectable verbosity level
// and colored level labels on terminals that support them.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is typically set
// from command line flags through [LevelFromFlags].
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to be a text handler
// writing to [os.Stderr] at the [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new [slog.Handler] that writes to the given writer
// at the current [UserLevel]. Level labels are colored when the writer
// is a terminal with color support.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelLabel(out, lvl))
			return a
		},
	})
}

// LevelLabel returns the label for the given level, colored
// according to the color profile of the given output.
func LevelLabel(out *termenv.Output, lvl slog.Level) string {
	label := lvl.String()
	if out.Profile == termenv.Ascii {
		return label
	}
	var clr string
	switch {
	case lvl >= slog.LevelError:
		clr = "#ef4444"
	case lvl >= slog.LevelWarn:
		clr = "#eab308"
	case lvl >= slog.LevelInfo:
		clr = "#22c55e"
	default:
		clr = "#a855f7"
	}
	return out.String(label).Foreground(out.Color(clr)).Bold().String()
}

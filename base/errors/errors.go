// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package with
// slog-based logging and panic helpers.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text.
// It is the standard [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf is the standard [fmt.Errorf], re-exported so that
// callers only need to import this package.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is is the standard [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the standard [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is the standard [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is the standard [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// LogDebug logs a non-nil error at the debug level and returns it.
// It is used for failures that are deliberately kept away from the user,
// such as best-effort persistence.
func LogDebug(err error) error {
	if err != nil {
		slog.Debug(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the given value, ignoring the given error.
// It makes it explicit that an error is being ignored.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

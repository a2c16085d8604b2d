// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cogentcore.org/pixelstudio/config"
	"cogentcore.org/pixelstudio/project"
	"github.com/stretchr/testify/require"
)

func configFor(t *testing.T) (*config.Config, error) {
	return config.Open(filepath.Join(t.TempDir(), "none.toml"))
}

func httpGet(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func mustJSON(t *testing.T, s *project.State) []byte {
	t.Helper()
	b, err := s.MarshalJSON()
	require.NoError(t, err)
	return b
}

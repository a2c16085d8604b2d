// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import "github.com/hack-pad/hackpadfs"

// writeRaw writes raw bytes as the draft file.
func writeRaw(ds *DraftStore, b []byte) error {
	return hackpadfs.WriteFullFile(ds.FS, ds.Path(), b, 0o644)
}

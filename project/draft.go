// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"encoding/json"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/pixelstudio/base/errors"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// DraftKey is the storage key of the recovery draft.
const DraftKey = "pixelStudio_v3_draft"

// DraftStore is the local recovery store holding the latest draft of a
// project. It is best-effort: every failure is logged at debug level and
// otherwise ignored, so that the editor stays usable without it.
type DraftStore struct {

	// FS is the filesystem holding the draft.
	FS hackpadfs.FS

	// Dir is the directory of the draft within FS, in slash form
	// without a leading slash. Empty means the root.
	Dir string
}

// NewOSDraftStore returns a draft store in the given operating system directory.
func NewOSDraftStore(dir string) (*DraftStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &DraftStore{FS: osfs.NewFS(), Dir: NormPath(abs)}, nil
}

// NormPath converts an absolute operating system path into the rooted
// slash form used by hackpadfs filesystems.
func NormPath(p string) string {
	p = filepath.ToSlash(p)
	if vol := filepath.VolumeName(p); vol != "" {
		p = strings.TrimPrefix(p, vol)
	}
	p = strings.TrimPrefix(path.Clean(p), "/")
	if p == "" {
		return "."
	}
	return p
}

// Path returns the path of the draft file within the store filesystem.
func (ds *DraftStore) Path() string {
	dir := ds.Dir
	if dir == "" {
		dir = "."
	}
	return path.Join(dir, DraftKey+".json")
}

// Save writes the given project as the current draft.
func (ds *DraftStore) Save(s *State) {
	if ds == nil || ds.FS == nil {
		return
	}
	f := s.File()
	f.UpdatedAt = time.Now().UnixMilli()
	b, err := json.Marshal(f)
	if errors.LogDebug(err) != nil {
		return
	}
	if ds.Dir != "" && ds.Dir != "." {
		if errors.LogDebug(hackpadfs.MkdirAll(ds.FS, ds.Dir, 0o755)) != nil {
			return
		}
	}
	errors.LogDebug(hackpadfs.WriteFullFile(ds.FS, ds.Path(), b, 0o644))
}

// Read returns the raw draft data, or nil if there is none.
func (ds *DraftStore) Read() []byte {
	if ds == nil || ds.FS == nil {
		return nil
	}
	f, err := hackpadfs.OpenFile(ds.FS, ds.Path(), os.O_RDONLY, 0)
	if err != nil {
		if !errors.Is(err, hackpadfs.ErrNotExist) {
			errors.LogDebug(err)
		}
		return nil
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if errors.LogDebug(err) != nil {
		return nil
	}
	return b
}

// Load restores the draft into the given state. It returns false,
// leaving the state unchanged, if there is no usable draft.
func (ds *DraftStore) Load(s *State) bool {
	b := ds.Read()
	if len(b) == 0 {
		return false
	}
	return errors.LogDebug(s.Import(b, "")) == nil
}

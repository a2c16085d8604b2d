// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/pixelstudio/base/errors"
	"golang.org/x/oauth2"
)

// Settings are the Drive settings.
type Settings struct {

	// ClientID is the OAuth2 client id.
	ClientID string `toml:"client_id"`

	// ClientSecret is the OAuth2 client secret.
	ClientSecret string `toml:"client_secret"`

	// TokenFile is where the OAuth2 token is saved.
	TokenFile string `toml:"token_file" default:"~/.pixelstudio/google-token.json"`

	// FolderID is the default upload folder; empty means the Drive root.
	FolderID string `toml:"folder_id"`
}

// OAuth2 returns the OAuth2 config of the settings.
func (st Settings) OAuth2() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     st.ClientID,
		ClientSecret: st.ClientSecret,
		Endpoint:     Endpoint,
		Scopes:       Scopes,
	}
}

// LoadToken reads a JSON token file.
func LoadToken(file string) (*oauth2.Token, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(b, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes the token as JSON, readable only by the user.
func SaveToken(file string, tok *oauth2.Token) error {
	b, err := json.MarshalIndent(tok, "", "\t")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o600)
}

// savingSource saves refreshed tokens to the token file.
type savingSource struct {
	src  oauth2.TokenSource
	file string

	mu   sync.Mutex
	last string
}

func (ss *savingSource) Token() (*oauth2.Token, error) {
	tok, err := ss.src.Token()
	if err != nil {
		return nil, err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if tok.AccessToken != ss.last {
		ss.last = tok.AccessToken
		errors.Log(SaveToken(ss.file, tok))
	}
	return tok, nil
}

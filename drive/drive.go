// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drive uploads exported files to Google Drive and lists
// destination folders, using OAuth2 tokens persisted in a token file.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"cogentcore.org/pixelstudio/base/errors"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// ErrNotConfigured is returned when no client id or saved token is available.
var ErrNotConfigured = errors.New("drive: not configured")

// Default endpoints.
const (
	UploadURL = "https://www.googleapis.com/upload/drive/v3/files"
	APIURL    = "https://www.googleapis.com/drive/v3"
	Issuer    = "https://accounts.google.com"

	// FolderMimeType is the MIME type of Drive folders.
	FolderMimeType = "application/vnd.google-apps.folder"
)

// Scopes are the OAuth2 scopes requested for uploads.
var Scopes = []string{oidc.ScopeOpenID, "email", "https://www.googleapis.com/auth/drive.file"}

// Endpoint is the Google OAuth2 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// File is an uploaded Drive file.
type File struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WebViewLink string `json:"webViewLink"`
}

// Folder is a Drive folder.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is the signed-in user.
type Profile struct {
	Email string
	Name  string
}

// Uploader uploads a file into a folder. An empty folderID means the
// Drive root.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte, mimeType, folderID string) (*File, error)
}

// Client talks to the Drive v3 API with an OAuth2 token source.
type Client struct {

	// UploadURL is the multipart upload endpoint.
	UploadURL string

	// APIURL is the base of the metadata API.
	APIURL string

	// Issuer is the OpenID Connect issuer used by [Client.Profile].
	Issuer string

	tokens oauth2.TokenSource
	http   *http.Client
}

// New returns a new client using the given token source and the
// default Google endpoints.
func New(ctx context.Context, ts oauth2.TokenSource) *Client {
	return &Client{
		UploadURL: UploadURL,
		APIURL:    APIURL,
		Issuer:    Issuer,
		tokens:    ts,
		http:      oauth2.NewClient(ctx, ts),
	}
}

// Open returns a new client from the given settings, reading the
// token saved in the token file. Refreshed tokens are saved back.
func Open(ctx context.Context, st Settings) (*Client, error) {
	if st.ClientID == "" || st.TokenFile == "" {
		return nil, ErrNotConfigured
	}
	tok, err := LoadToken(st.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}
	ts := &savingSource{
		src:  st.OAuth2().TokenSource(ctx, tok),
		file: st.TokenFile,
		last: tok.AccessToken,
	}
	return New(ctx, oauth2.ReuseTokenSource(tok, ts)), nil
}

// Upload implements [Uploader] with a multipart upload: a JSON
// metadata part followed by the file content.
func (c *Client) Upload(ctx context.Context, filename string, data []byte, mimeType, folderID string) (*File, error) {
	meta := map[string]any{"name": filename, "mimeType": mimeType}
	if folderID != "" {
		meta["parents"] = []string{folderID}
	}
	mj, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	pw, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	pw.Write(mj)
	pw, err = mw.CreatePart(textproto.MIMEHeader{"Content-Type": {mimeType}})
	if err != nil {
		return nil, err
	}
	pw.Write(data)
	if err := mw.Close(); err != nil {
		return nil, err
	}

	u := c.UploadURL + "?uploadType=multipart&fields=" + url.QueryEscape("id,name,webViewLink")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+mw.Boundary())
	f := &File{}
	if err := c.do(req, f); err != nil {
		return nil, fmt.Errorf("drive: upload %q: %w", filename, err)
	}
	slog.Info("drive: uploaded", "name", f.Name, "id", f.ID)
	return f, nil
}

// Folders returns the folders that are not trashed, inside the given
// parent folder if it is not empty, sorted by name.
func (c *Client) Folders(ctx context.Context, parentID string) ([]Folder, error) {
	q := "mimeType='" + FolderMimeType + "' and trashed=false"
	if parentID != "" {
		q += " and '" + parentID + "' in parents"
	}
	v := url.Values{}
	v.Set("q", q)
	v.Set("fields", "files(id,name)")
	v.Set("orderBy", "name")
	v.Set("pageSize", "100")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+"/files?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var res struct {
		Files []Folder `json:"files"`
	}
	if err := c.do(req, &res); err != nil {
		return nil, fmt.Errorf("drive: list folders: %w", err)
	}
	return res.Files, nil
}

// Profile returns the signed-in user from the OpenID Connect user info endpoint.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	ctx = oidc.ClientContext(ctx, c.http)
	provider, err := oidc.NewProvider(ctx, c.Issuer)
	if err != nil {
		return nil, err
	}
	ui, err := provider.UserInfo(ctx, c.tokens)
	if err != nil {
		return nil, err
	}
	p := &Profile{Email: ui.Email}
	claims := map[string]any{}
	if errors.Log(ui.Claims(&claims)) == nil {
		p.Name, _ = claims["name"].(string)
	}
	return p, nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		if len(b) > 200 {
			b = b[:200]
		}
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(b))
	}
	return json.Unmarshal(b, v)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/xyz"
	"github.com/gorilla/websocket"
)

// writeWait is the time allowed to write a frame to a viewer.
const writeWait = 5 * time.Second

// viewer is one connected websocket.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is an [http.Handler] that accepts websocket viewers and
// broadcasts every rendered scene to them. Newly connected viewers
// receive the latest frame immediately.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	viewers map[*viewer]bool
	last    []byte
	seq     uint64
	closed  bool
}

// NewHub returns a new hub.
func NewHub() *Hub {
	return &Hub{viewers: map[*viewer]bool{}}
}

// Render encodes the scene and broadcasts it to all viewers.
// A viewer that is still busy with earlier frames skips this one.
func (h *Hub) Render(sc *xyz.Scene) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	b, err := json.Marshal(NewFrame(sc, h.seq))
	if errors.Log(err) != nil {
		return
	}
	h.last = b
	for v := range h.viewers {
		select {
		case v.send <- b:
		default:
			slog.Debug("preview: viewer busy, frame skipped", "seq", h.seq)
		}
	}
}

// Seq returns the sequence number of the last rendered frame.
func (h *Hub) Seq() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seq
}

// NumViewers returns the number of connected viewers.
func (h *Hub) NumViewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request to a websocket and serves the viewer
// until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, 4)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.viewers[v] = true
	if h.last != nil {
		v.send <- h.last
	}
	h.mu.Unlock()
	slog.Info("preview: viewer connected", "addr", r.RemoteAddr)

	go h.write(v)
	// viewers only send close frames; reading detects the disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(v)
	slog.Info("preview: viewer disconnected", "addr", r.RemoteAddr)
}

func (h *Hub) write(v *viewer) {
	for b := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			errors.LogDebug(err)
			v.conn.Close()
			return
		}
	}
	v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	v.conn.Close()
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.viewers[v] {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Close disconnects all viewers and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

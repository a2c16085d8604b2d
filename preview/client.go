// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"encoding/json"

	"cogentcore.org/pixelstudio/base/errors"
	"github.com/gorilla/websocket"
)

// Client is a viewer connection to a [Hub].
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}
}

// Connect connects to a hub at the given ws:// url.
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnFrame sets a callback function to be called when a frame is received.
// This function can only be called once.
func (c *Client) OnFrame(f func(fr *Frame)) {
	go func() {
		defer close(c.done)
		for {
			_, msg, err := c.conn.ReadMessage()
			if err != nil {
				errors.LogDebug(err)
				return
			}
			fr := &Frame{}
			if errors.Log(json.Unmarshal(msg, fr)) == nil {
				f(fr)
			}
		}
	}()
}

// Close cleanly closes the connection. Once the hub acknowledges,
// the channel returned by [Client.Done] is closed.
func (c *Client) Close() error {
	return c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Done returns a channel that is closed when the connection ends.
// It is only closed after [Client.OnFrame] has been called.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

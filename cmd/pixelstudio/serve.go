// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"cogentcore.org/pixelstudio/base/errors"
	"cogentcore.org/pixelstudio/editor"
	"cogentcore.org/pixelstudio/imagex"
	"cogentcore.org/pixelstudio/preview"
)

const indexPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>pixelstudio preview</title></head>
<body style="font-family:sans-serif">
<img id="px" src="/preview.png" style="image-rendering:pixelated;width:256px">
<pre id="info">connecting...</pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (e) => {
  const fr = JSON.parse(e.data);
  document.getElementById("px").src = "/preview.png?seq=" + fr.seq;
  const lines = fr.solids.map(s => s.name + " " + s.kind + " " + s.color + " x" + s.instances.length);
  document.getElementById("info").textContent =
    "frame " + fr.seq + "  " + fr.gridW + "x" + fr.gridH + "\n" + lines.join("\n");
};
ws.onclose = () => { document.getElementById("info").textContent = "disconnected"; };
</script>
</body></html>
`

// server serves one project being watched.
type server struct {
	mu  sync.Mutex
	ed  *editor.Editor
	hub *preview.Hub
	app *app
}

func (sv *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", sv.hub)
	mux.HandleFunc("/preview.png", func(w http.ResponseWriter, r *http.Request) {
		sv.mu.Lock()
		s := sv.ed.State
		im := imagex.Render(s.Composite(), s.Size(), sv.app.cell)
		sv.mu.Unlock()
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if err := imagex.Write(im, w, imagex.PNG); err != nil {
			slog.Debug("preview: write png", "err", err)
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexPage)
	})
	return mux
}

// reload imports the project file again, pushing the new scene to viewers.
func (sv *server) reload(file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("reload", "file", file, "err", err)
		return
	}
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.ed.Import(data, baseName(file))
}

func (a *app) serve(ctx context.Context, file string) error {
	s, err := a.load(file)
	if err != nil {
		return err
	}
	sv := &server{ed: a.newEditor(s), hub: preview.NewHub(), app: a}
	sv.ed.Renderer = sv.hub
	sv.hub.Render(sv.ed.Scene())

	srv := &http.Server{Addr: a.addr, Handler: sv.handler(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	fmt.Fprintf(a.stdout, "serving preview of %s at http://%s\n", file, a.addr)

	werr := make(chan error, 1)
	go func() {
		werr <- watchFile(ctx, file, func() { sv.reload(file) })
	}()
	select {
	case err = <-errc:
	case err = <-werr:
	case <-ctx.Done():
		err = ctx.Err()
	}
	sv.hub.Close()
	shut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	errors.Log(srv.Shutdown(shut))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadMessageType is the kind of a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
)

// ReloadMessage is sent to browsers over the WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

const writeTimeout = 5 * time.Second

// ReloadHub tracks connected browsers and broadcasts reload messages.
type ReloadHub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewReloadHub creates an empty hub.
func NewReloadHub(logger *slog.Logger) *ReloadHub {
	return &ReloadHub{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(conn)
}

// NotifyReload asks every browser to reload the page.
func (h *ReloadHub) NotifyReload() { h.broadcast(ReloadMessage{Type: ReloadTypeFull}) }

// NotifyCSS asks every browser to refetch its stylesheets.
func (h *ReloadHub) NotifyCSS(file string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows an error overlay in every browser.
func (h *ReloadHub) NotifyError(msg string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// broadcast writes msg to every client, dropping the ones that fail.
// Writes are serialized because a connection supports one writer.
func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *ReloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected browsers.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every browser.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// ReloadScript is the browser side of the live reload protocol. It is
// served at /_kiln/reload.js.
const ReloadScript = `(function() {
  'use strict';

  var delay = 1000;

  function connect() {
    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + '/_kiln/reload');

    ws.onopen = function() { delay = 1000; };

    ws.onmessage = function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }

      switch (msg.type) {
        case 'reload':
          location.reload();
          break;
        case 'css':
          document.querySelectorAll('link[rel="stylesheet"]').forEach(function(link) {
            var url = new URL(link.href);
            url.searchParams.set('_reload', Date.now());
            link.href = url.toString();
          });
          break;
        case 'error':
          showError(msg.error);
          break;
      }
    };

    ws.onclose = function() {
      setTimeout(function() {
        delay = Math.min(delay * 2, 30000);
        connect();
      }, delay);
    };
  }

  function showError(text) {
    var overlay = document.getElementById('kiln-error-overlay');
    if (!overlay) {
      overlay = document.createElement('pre');
      overlay.id = 'kiln-error-overlay';
      overlay.style.cssText = 'position:fixed;inset:0;margin:0;padding:24px;background:rgba(0,0,0,0.9);color:#f55;font:14px monospace;white-space:pre-wrap;overflow:auto;z-index:999999;';
      document.body.appendChild(overlay);
    }
    overlay.textContent = text;
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', connect);
  } else {
    connect();
  }
})();
`

package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-go/compound/pkg/enhance"
	"github.com/vango-go/compound/pkg/render"
	"github.com/vango-go/compound/pkg/vdom"
)

// EnhanceRequest is sent by the browser: an injection configuration to
// apply to the demo tree. The same XOR contract as enhance.Options holds;
// if both fields arrive, mapProps wins.
type EnhanceRequest struct {
	MapProps map[string]vdom.Props `json:"mapProps,omitempty"`
	Props    vdom.Props            `json:"props,omitempty"`
}

// EnhanceResponse carries the re-rendered HTML back to the browser.
type EnhanceResponse struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// PlaygroundServer manages WebSocket connections for the props
// playground. Each incoming message is an injection configuration; the
// server enhances the demo tree with it, renders the result, and replies
// with the HTML.
type PlaygroundServer struct {
	tree     func() *vdom.VNode
	renderer *render.Renderer
	logger   *slog.Logger

	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewPlaygroundServer creates a playground over the given demo tree.
// The tree function is called once per message so the playground always
// works against a fresh, unenhanced tree.
func NewPlaygroundServer(tree func() *vdom.VNode, logger *slog.Logger) *PlaygroundServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaygroundServer{
		tree:     tree,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   logger,
		clients:  make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and the per-connection
// request/response loop.
func (p *PlaygroundServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := p.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	p.mu.Lock()
	p.clients[conn] = true
	p.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		resp := p.handleMessage(data)
		out, err := json.Marshal(resp)
		if err != nil {
			p.logger.Error("playground: marshal response", "error", err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			break
		}
	}

	p.mu.Lock()
	delete(p.clients, conn)
	p.mu.Unlock()
	conn.Close()
}

func (p *PlaygroundServer) handleMessage(data []byte) EnhanceResponse {
	var req EnhanceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return EnhanceResponse{Error: "invalid request: " + err.Error()}
	}

	enhanced := enhance.Enhance(p.tree(), enhance.Options{
		MapProps: req.MapProps,
		Props:    req.Props,
	})

	html, err := p.renderer.RenderToString(enhanced)
	if err != nil {
		return EnhanceResponse{Error: "render: " + err.Error()}
	}
	return EnhanceResponse{HTML: html}
}

// ClientCount returns the number of connected clients.
func (p *PlaygroundServer) ClientCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.clients)
}

// Close closes all client connections.
func (p *PlaygroundServer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for client := range p.clients {
		client.Close()
		delete(p.clients, client)
	}
}

// PlaygroundScript is the JavaScript injected into the demo page. It
// opens the WebSocket, sends the configuration typed into the textarea,
// and swaps the returned HTML into the preview container.
const PlaygroundScript = `
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var input = document.getElementById("playground-input");
  var preview = document.getElementById("playground-preview");
  var errbox = document.getElementById("playground-error");
  if (!input || !preview) return;

  ws.onmessage = function(ev) {
    var msg = JSON.parse(ev.data);
    if (msg.error) {
      errbox.textContent = msg.error;
      return;
    }
    errbox.textContent = "";
    preview.innerHTML = msg.html;
  };

  input.addEventListener("input", function() {
    try {
      JSON.parse(input.value);
    } catch (e) {
      errbox.textContent = "invalid JSON";
      return;
    }
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(input.value);
    }
  });
})();
</script>
`

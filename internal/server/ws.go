package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"rosgraph/pkg/graph"
	"rosgraph/pkg/observability"
	"rosgraph/pkg/source"
)

// updateMessage is the envelope pushed to websocket clients.
type updateMessage struct {
	Type string      `json:"type"`
	Data graph.Graph `json:"data"`
}

const graphUpdateType = "graph_update"

// client is a connected websocket peer. The write mutex serializes
// broadcast writes and ping replies, which arrive from different
// goroutines.
type client struct {
	id   string
	conn *websocket.Conn

	mu sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// hub tracks websocket clients and pushes graph updates when the polled
// source changes.
type hub struct {
	src      source.Source
	interval time.Duration
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[string]*client
	lastHash string
}

func newHub(src source.Source, interval time.Duration, logger *log.Logger) *hub {
	return &hub{
		src:      src,
		interval: interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			// Cross-origin policy is handled by the CORS middleware for
			// REST; the socket accepts any origin the browser sends.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// run polls the source until ctx is cancelled, broadcasting a
// graph_update message whenever the snapshot hash changes.
func (h *hub) run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.poll(ctx)
		}
	}
}

func (h *hub) poll(ctx context.Context) {
	g, err := h.src.Snapshot(ctx)
	if err != nil {
		h.logger.Warn("snapshot failed", "source", h.src.Name(), "err", err)
		return
	}

	hash := g.Hash()

	h.mu.Lock()
	changed := hash != h.lastHash
	if changed {
		h.lastHash = hash
	}
	clientCount := len(h.clients)
	h.mu.Unlock()

	if !changed {
		return
	}
	observability.Snapshot().OnChange(ctx, hash)

	if clientCount == 0 {
		return
	}
	h.broadcast(ctx, g)
}

func (h *hub) broadcast(ctx context.Context, g graph.Graph) {
	payload, err := json.Marshal(updateMessage{Type: graphUpdateType, Data: g})
	if err != nil {
		h.logger.Error("marshal update", "err", err)
		return
	}

	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range targets {
		if err := c.write(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("dropping client", "client", c.id, "err", err)
			h.remove(c)
			continue
		}
		sent++
	}

	observability.Socket().OnBroadcast(ctx, sent, len(payload))
	h.logger.Debug("broadcast", "clients", sent, "bytes", len(payload))
}

// handleSocket upgrades the connection, sends the current snapshot, and
// then serves ping/pong until the peer disconnects.
func (h *hub) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	observability.Socket().OnConnect(r.Context(), c.id)
	h.logger.Debug("client connected", "client", c.id)

	if g, err := h.src.Snapshot(r.Context()); err == nil {
		if payload, err := json.Marshal(updateMessage{Type: graphUpdateType, Data: g}); err == nil {
			_ = c.write(websocket.TextMessage, payload)
		}
	}

	defer func() {
		h.remove(c)
		observability.Socket().OnDisconnect(r.Context(), c.id)
		h.logger.Debug("client disconnected", "client", c.id)
	}()

	for {
		messageType, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType == websocket.TextMessage && string(msg) == "ping" {
			if err := c.write(websocket.TextMessage, []byte("pong")); err != nil {
				return
			}
		}
	}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		_ = c.conn.Close()
	}
	h.mu.Unlock()
}

func (h *hub) closeAll() {
	h.mu.Lock()
	for id, c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, id)
	}
	h.mu.Unlock()
}

package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"lock-tracking-api-server/internal/logger"
	"lock-tracking-api-server/internal/models"
)

type client struct {
	conn     *websocket.Conn
	vendorID string
}

// Hub tracks connected WebSocket clients and pushes lock events to the
// vendors that may see them.
type Hub struct {
	// clients maps user id to connection; one connection per user.
	clients map[string]*client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register adds a client. The vendor id decides which events it receives;
// system-vendor clients receive everything.
func (h *Hub) Register(userID, vendorID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = &client{conn: conn, vendorID: vendorID}
	logger.Get().Info("websocket client registered", zap.String("user", userID))
}

func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		logger.Get().Info("websocket client unregistered", zap.String("user", userID))
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Event is the wire shape of a pushed update.
type Event struct {
	Type string `json:"type"` // e.g. "lock_updated"
	Data any    `json:"data"`
}

// BroadcastVendor sends an event to every client of vendorID plus the system
// administrators. A client that is offline or failing is skipped; delivery is
// best effort.
func (h *Hub) BroadcastVendor(vendorID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Get().Error("failed to marshal websocket event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, c := range h.clients {
		if c.vendorID != vendorID && c.vendorID != models.SystemVendorID {
			continue
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Get().Warn("failed to push websocket event",
				zap.String("user", userID), zap.Error(err))
		}
	}
}

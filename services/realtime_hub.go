package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type WSClient struct {
	UserID uint
	Conn   Conn

	mu sync.Mutex
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// Ping is safe to call alongside broadcasts.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// RealtimeHub fans order events out to the owner's open websockets.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
	log     *zap.Logger
}

func NewRealtimeHub(log *zap.Logger) *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{}), log: log}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("realtime payload not encodable", zap.Error(err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			h.log.Debug("realtime write failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
}

// OrderUpdated implements OrderNotifier.
func (h *RealtimeHub) OrderUpdated(userID uint, order OrderView) {
	h.Broadcast(userID, map[string]any{
		"kind":  "order.updated",
		"order": order,
	})
}

package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// WSClient wraps one websocket connection of one user. The connection
// permits only a single concurrent writer, so the keepalive pings and the
// hub's broadcasts both go through the write mutex. Reads stay unlocked;
// the controller's read loop is the only reader.
type WSClient struct {
	UserID uint

	writeMu sync.Mutex
	conn    *websocket.Conn
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{UserID: userID, conn: conn}
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Ping sends a keepalive frame.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// ReadMessage blocks until the next frame or a read error.
func (c *WSClient) ReadMessage() error {
	_, _, err := c.conn.ReadMessage()
	return err
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// RealtimeHub pushes freshly recomputed day totals to a user's connected
// day-view clients after meal mutations, so open views refresh without
// polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
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
	_ = c.Close()
}

type summaryMessage struct {
	Type    string               `json:"type"`
	Summary *models.DailySummary `json:"summary"`
}

// BroadcastSummary sends the summary to every connection of the user. Write
// errors are ignored; dead connections drop out via the read loop.
func (h *RealtimeHub) BroadcastSummary(userID uint, summary *models.DailySummary) {
	msg, err := json.Marshal(summaryMessage{Type: "daily_summary", Summary: summary})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.write(websocket.TextMessage, msg)
	}
}

package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// WSEvent is a real-time notification pushed to a connected dashboard.
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks the open dashboard sockets, one slot per user.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

// Push sends an event to one user if they are connected. Slow clients
// are skipped rather than blocked on.
func (h *Hub) Push(userID int64, event *WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.connections[userID]; ok {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Broadcast sends an event to every connected user.
func (h *Hub) Broadcast(event *WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ServeWS registers a new connection and runs the pumps. Blocks until
// the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// clients only listen; drain until disconnect
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

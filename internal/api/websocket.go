package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/notify"
)

// WebSocketMessage is the envelope for all messages pushed to clients.
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// WebSocketHub fans messages out to connected dashboard clients.
type WebSocketHub struct {
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan WebSocketMessage
}

type wsClient struct {
	conn *websocket.Conn
	send chan WebSocketMessage
}

// NewWebSocketHub creates a hub. Call Run in a goroutine before use.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan WebSocketMessage, 16),
	}
}

// Run processes register/unregister/broadcast events until the process exits.
func (h *WebSocketHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow client; drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast queues a message for all connected clients.
func (h *WebSocketHub) Broadcast(msg WebSocketMessage) {
	h.broadcast <- msg
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebSocket upgrades the connection and registers it with the hub.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed: %v", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan WebSocketMessage, 16),
	}
	s.wsHub.register <- client

	go client.writeLoop()
	go client.readLoop(s.wsHub)
}

func (c *wsClient) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// readLoop drains the connection so control frames are processed, and
// unregisters the client when it closes.
func (c *wsClient) readLoop(hub *WebSocketHub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// hubSubscriber bridges the alert service onto the WebSocket hub.
type hubSubscriber struct {
	hub *WebSocketHub
	id  string
	mu  sync.Mutex
}

func (h *hubSubscriber) Send(alert notify.Alert) error {
	h.hub.Broadcast(WebSocketMessage{
		Type:      "alert",
		Data:      alert,
		Timestamp: time.Now(),
	})
	return nil
}

func (h *hubSubscriber) ID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.id == "" {
		h.id = uuid.New().String()
	}
	return h.id
}

package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/stepsync/dance_marketplace/models"
)

type Client struct {
	UserID string
	Conn   *websocket.Conn
}

// MessagePayload is the inbound chat frame.
type MessagePayload struct {
	ReceiverID string `json:"receiver_id"`
	LessonID   string `json:"lesson_id,omitempty"`
	Message    string `json:"message"`
}

// Hub fans persisted messages out to connected recipients. One connection
// per user id; a reconnect replaces the old one.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*websocket.Conn
	register   chan *Client
	unregister chan *Client
	broadcast  chan *models.Message
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *models.Message, 16),
	}
}

func (h *Hub) Register(c *Client) { h.register <- c }

func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Broadcast queues a message for delivery to its receiver. Never blocks the
// caller when the hub is not running.
func (h *Hub) Broadcast(m *models.Message) {
	select {
	case h.broadcast <- m:
	default:
		log.Printf("Dropping chat broadcast for %s: hub queue full", m.ReceiverID)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			log.Printf("Chat client registered: %s", client.UserID)
			h.mu.Lock()
			h.clients[client.UserID] = client.Conn
			h.mu.Unlock()
		case client := <-h.unregister:
			log.Printf("Chat client unregistered: %s", client.UserID)
			h.mu.Lock()
			if conn, ok := h.clients[client.UserID]; ok && conn == client.Conn {
				delete(h.clients, client.UserID)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			conn, ok := h.clients[message.ReceiverID]
			h.mu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Error sending message to client %s: %v", message.ReceiverID, err)
				conn.Close()
				h.mu.Lock()
				if current, ok := h.clients[message.ReceiverID]; ok && current == conn {
					delete(h.clients, message.ReceiverID)
				}
				h.mu.Unlock()
			}
		}
	}
}

package websocket

import (
	"context"
	"sync"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

const (
	MessageTypeState = "state"
	MessageTypeAlert = "alert"
)

// Hub fans simulation updates out to websocket clients.
// Implements port.NotificationService.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// guards clients
	mu sync.RWMutex

	logger *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and broadcasts until ctx is done, then
// disconnects every client. Run it in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("WebSocket hub started")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("WebSocket hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("Client registered", "total_clients", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("Client unregistered", "total_clients", total)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow consumer
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("Client channel full, disconnected", "type", message.Type)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds client to the fan-out. After Run has returned the client's
// channel is closed instead, so its write pump exits.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister is a no-op once Run has returned; Run already closed every
// registered client.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast never blocks; a full hub queue drops the update.
func (h *Hub) Broadcast(state *dto.SimulationStateDTO) {
	h.enqueue(Message{Type: MessageTypeState, Data: state})
}

func (h *Hub) BroadcastAlert(alert *dto.AlertDTO) {
	h.enqueue(Message{Type: MessageTypeAlert, Data: alert})
}

func (h *Hub) enqueue(message Message) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("Broadcast channel full, dropping message", "type", message.Type)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Message is the envelope written to clients.
type Message struct {
	Type string      `json:"type"` // "state" or "alert"
	Data interface{} `json:"data"`
}

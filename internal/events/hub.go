package events

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MsgCollectionChanged announces that an admin write replaced a collection.
const MsgCollectionChanged = "collection.changed"

// Message is the envelope broadcast to every connected listener.
type Message struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub maintains the set of connected listeners and fans broadcast messages
// out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	logger     *zap.Logger
	clock      func() time.Time

	mu sync.RWMutex
}

// NewHub constructs an idle hub. Call Run on its own goroutine to start it.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		clock:      time.Now,
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			payload, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("event encode failed", zap.Error(err))
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow consumer; drop it rather than stall the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// CollectionChanged implements services.Publisher. It never blocks; when the
// broadcast queue is full the notification is dropped.
func (h *Hub) CollectionChanged(name string) {
	message := &Message{
		Type:       MsgCollectionChanged,
		Collection: name,
		Timestamp:  h.clock().UTC(),
	}
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("event queue full, dropping notification", zap.String("collection", name))
	}
}

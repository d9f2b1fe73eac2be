package realtime

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
)

// Hub maintains the set of connected clients and fans membership events
// out to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan domain.MembershipEvent
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan domain.MembershipEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes client lifecycle and broadcast events until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			logger.Info("Realtime hub stopped")
			return

		case client := <-h.register:
			h.clients[client] = true
			logger.Debug("Realtime client connected", "total_clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			logger.Debug("Realtime client disconnected", "total_clients", len(h.clients))

		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Slow consumer, drop it rather than stall the hub
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// BroadcastMembership queues a membership event for delivery to all
// connected clients. It never blocks; when the hub is saturated the event
// is dropped.
func (h *Hub) BroadcastMembership(event domain.MembershipEvent) {
	select {
	case h.broadcast <- event:
	default:
		logger.Warn("Realtime broadcast queue full, dropping membership event",
			"conversation_id", event.ConversationID, "type", event.Type)
	}
}

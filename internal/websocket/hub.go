package websocket

import "github.com/rs/zerolog/log"

// Hub maintains the set of connected admin dashboards and broadcasts
// activity messages to them. There is a single global stream; every
// connected client sees every event.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Inbound messages for broadcast to all clients.
	broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Dashboard client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Int("total_clients", len(h.clients)).Msg("Dashboard client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// TryBroadcast queues a message for all clients without blocking the caller.
// Messages are dropped when the hub is saturated; the activity feed is a
// convenience view, the database holds the record.
func (h *Hub) TryBroadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Warn().Msg("Activity broadcast dropped, hub saturated")
	}
}

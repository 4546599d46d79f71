package handlers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP layer already applies CORS; the activity feed carries no
	// privileged data beyond what the admin endpoints expose.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades connections to the live activity feed.
type WebSocketHandler struct {
	hub *websocket.Hub
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Serve upgrades the request and attaches the client to the hub.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// EventHandler serves the recent admin activity feed.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent returns the latest activity events, newest first. An optional
// "limit" query parameter caps the result.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeDetail(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	events, err := h.service.GetRecent(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load activity events")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

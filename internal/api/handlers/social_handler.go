package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// SocialHandler handles social media link requests.
type SocialHandler struct {
	service  services.SocialServiceProvider
	eventSvc services.EventServiceProvider
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(service services.SocialServiceProvider, eventSvc services.EventServiceProvider) *SocialHandler {
	return &SocialHandler{service: service, eventSvc: eventSvc}
}

// GetPublic returns the links for the public site. A disabled record shows
// up as disabled with no links.
func (h *SocialHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load social media links")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !links.Enabled {
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": false})
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// GetAdmin returns the full record for the admin UI.
func (h *SocialHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load social media links")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// Update applies a partial links update.
func (h *SocialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.SocialMediaLinksUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	links, err := h.service.Update(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update social media links")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("social", "info", "Social media links updated")
	writeJSON(w, http.StatusOK, links)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// FilmHandler handles featured film requests.
type FilmHandler struct {
	service  services.FilmServiceProvider
	eventSvc services.EventServiceProvider
}

// NewFilmHandler creates a new FilmHandler.
func NewFilmHandler(service services.FilmServiceProvider, eventSvc services.EventServiceProvider) *FilmHandler {
	return &FilmHandler{service: service, eventSvc: eventSvc}
}

// GetFeatured returns the featured film, creating a default on first access.
func (h *FilmHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	film, err := h.service.GetFeatured()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load featured film")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, film)
}

// UpdateFeatured sets the featured film's title and video URL.
func (h *FilmHandler) UpdateFeatured(w http.ResponseWriter, r *http.Request) {
	var payload models.FilmUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	film, err := h.service.UpdateFeatured(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update featured film")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("film", "info", "Featured film updated")
	writeJSON(w, http.StatusOK, film)
}

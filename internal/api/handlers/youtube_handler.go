package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// YouTubeHandler handles the YouTube integration endpoints.
type YouTubeHandler struct {
	service  services.YouTubeServiceProvider
	feedSvc  *feeds.Service
	eventSvc services.EventServiceProvider
}

// NewYouTubeHandler creates a new YouTubeHandler.
func NewYouTubeHandler(service services.YouTubeServiceProvider, feedSvc *feeds.Service, eventSvc services.EventServiceProvider) *YouTubeHandler {
	return &YouTubeHandler{service: service, feedSvc: feedSvc, eventSvc: eventSvc}
}

// GetPublicSettings exposes the non-secret feed configuration. The API key
// never appears here.
func (h *YouTubeHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load YouTube settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"channel_id":          settings.ChannelID,
		"max_videos":          settings.MaxVideos,
		"enabled":             settings.Enabled,
		"section_title":       settings.SectionTitle,
		"section_description": settings.SectionDescription,
	})
}

// GetVideos serves the cached channel feed. Failures yield an empty list.
func (h *YouTubeHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.feedSvc.GetVideos(r.Context()))
}

// GetAdminSettings returns the full configuration including the API key.
func (h *YouTubeHandler) GetAdminSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load YouTube settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings applies a partial update and invalidates the feed cache.
func (h *YouTubeHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload models.YouTubeSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.service.Update(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update YouTube settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.feedSvc.Invalidate()
	h.eventSvc.Record("youtube", "info", "YouTube settings updated")
	writeJSON(w, http.StatusOK, settings)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// FacebookHandler handles the Facebook integration endpoints.
type FacebookHandler struct {
	service  services.FacebookServiceProvider
	feedSvc  *feeds.Service
	client   *feeds.FacebookClient
	eventSvc services.EventServiceProvider
}

// NewFacebookHandler creates a new FacebookHandler.
func NewFacebookHandler(service services.FacebookServiceProvider, feedSvc *feeds.Service, client *feeds.FacebookClient, eventSvc services.EventServiceProvider) *FacebookHandler {
	return &FacebookHandler{service: service, feedSvc: feedSvc, client: client, eventSvc: eventSvc}
}

// GetPublicSettings exposes the non-secret feed configuration. The access
// token never appears here.
func (h *FacebookHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load Facebook settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !settings.Enabled {
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pageId":     settings.PageID,
		"enabled":    settings.Enabled,
		"postsLimit": settings.PostsLimit,
	})
}

// GetPosts serves the cached page feed. Failures yield an empty list so the
// public site never breaks over a third-party outage.
func (h *FacebookHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.feedSvc.GetPosts(r.Context()))
}

// GetAdminSettings returns the full configuration including the token.
func (h *FacebookHandler) GetAdminSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load Facebook settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings applies a partial update and invalidates the feed cache.
func (h *FacebookHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload models.FacebookSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.service.Update(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update Facebook settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.feedSvc.Invalidate()
	h.eventSvc.Record("facebook", "info", "Facebook settings updated")
	writeJSON(w, http.StatusOK, settings)
}

// TestPayload is the pageId/token pair to verify.
type TestPayload struct {
	PageID      string `json:"pageId"`
	AccessToken string `json:"accessToken"`
}

// TestConnection checks a pageId/token pair against the Graph API without
// persisting it.
func (h *FacebookHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	var payload TestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.client.TestConnection(r.Context(), payload.PageID, payload.AccessToken)
	writeJSON(w, http.StatusOK, result)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// SettingsHandler handles site settings requests.
type SettingsHandler struct {
	service  services.SettingsServiceProvider
	store    *upload.Store
	eventSvc services.EventServiceProvider
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service services.SettingsServiceProvider, store *upload.Store, eventSvc services.EventServiceProvider) *SettingsHandler {
	return &SettingsHandler{service: service, store: store, eventSvc: eventSvc}
}

// Get returns the site settings, creating defaults on first access.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load site settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update applies a partial settings update.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.SiteSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.service.Update(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update site settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("settings", "info", "Site settings updated")
	writeJSON(w, http.StatusOK, settings)
}

// UploadLogo replaces the site logo, deleting the previous upload.
func (h *SettingsHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	settings, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load site settings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logoURL, ok := saveFormFile(w, r, h.store, "logo", "logo")
	if !ok {
		return
	}

	if settings.LogoURL != nil {
		h.store.Delete(*settings.LogoURL)
	}

	if _, err := h.service.SetLogoURL(logoURL); err != nil {
		log.Error().Err(err).Msg("Failed to store logo URL")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("settings", "info", "Site logo replaced")
	writeJSON(w, http.StatusOK, map[string]string{"logoUrl": logoURL})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// SectionHandler handles section heading content requests.
type SectionHandler struct {
	service  services.SectionServiceProvider
	eventSvc services.EventServiceProvider
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(service services.SectionServiceProvider, eventSvc services.EventServiceProvider) *SectionHandler {
	return &SectionHandler{service: service, eventSvc: eventSvc}
}

// Get returns the content for one section key, creating defaults on first access.
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.service.GetOrCreate(chi.URLParam(r, "key"))
	if err != nil {
		writeServiceError(w, err, "Section not found")
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// Update applies a partial update to a section's content.
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var payload models.SectionContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sc, err := h.service.Update(key, payload)
	if err != nil {
		writeServiceError(w, err, "Section not found")
		return
	}

	h.eventSvc.Record("section", "info", "Section content updated: "+key)
	writeJSON(w, http.StatusOK, sc)
}

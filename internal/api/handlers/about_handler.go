package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// AboutHandler handles about section requests.
type AboutHandler struct {
	service  services.AboutServiceProvider
	store    *upload.Store
	eventSvc services.EventServiceProvider
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(service services.AboutServiceProvider, store *upload.Store, eventSvc services.EventServiceProvider) *AboutHandler {
	return &AboutHandler{service: service, store: store, eventSvc: eventSvc}
}

// Get returns the about section, creating defaults on first access.
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load about section")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

// Update applies a partial multipart update. An uploaded portrait replaces
// the old one; previously uploaded files are deleted, external stock URLs
// are left alone.
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	existing, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load about section")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var imageURL *string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		url, err := h.store.Save(file, header, "about")
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if strings.HasPrefix(existing.Image, upload.URLPrefix) {
			h.store.Delete(existing.Image)
		}
		imageURL = &url
	}

	about, err := h.service.Update(
		optionalFormValue(r, "name"),
		optionalFormValue(r, "bio"),
		imageURL,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update about section")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("about", "info", "About section updated")
	writeJSON(w, http.StatusOK, about)
}

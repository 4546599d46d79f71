package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// CarouselHandler handles hero carousel requests.
type CarouselHandler struct {
	service  services.CarouselServiceProvider
	store    *upload.Store
	eventSvc services.EventServiceProvider
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(service services.CarouselServiceProvider, store *upload.Store, eventSvc services.EventServiceProvider) *CarouselHandler {
	return &CarouselHandler{service: service, store: store, eventSvc: eventSvc}
}

// GetPublic returns only the enabled slides, in display order.
func (h *CarouselHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetEnabled()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load hero carousel")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetAll returns every slide for the admin UI.
func (h *CarouselHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load hero carousel")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create uploads a new slide image and appends it to the carousel.
func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	imageURL, ok := saveFormFile(w, r, h.store, "image", "hero")
	if !ok {
		return
	}

	item, err := h.service.Create(imageURL, r.FormValue("alt"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create carousel item")
		h.store.Delete(imageURL)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("carousel", "info", "Carousel slide added")
	writeJSON(w, http.StatusCreated, item)
}

// Update applies a partial slide update (alt text, enabled flag).
func (h *CarouselHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload models.HeroCarouselUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(id, payload)
	if err != nil {
		writeServiceError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Reorder assigns new display positions to the slides.
func (h *CarouselHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var payload models.HeroCarouselReorder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Reorder(payload); err != nil {
		log.Error().Err(err).Msg("Failed to reorder carousel")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reordered successfully"})
}

// Delete removes a slide and its stored image.
func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.service.Delete(id)
	if err != nil {
		writeServiceError(w, err, "Item not found")
		return
	}

	h.store.Delete(item.URL)
	h.eventSvc.Record("carousel", "info", "Carousel slide deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

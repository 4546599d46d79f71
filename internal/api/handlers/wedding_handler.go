package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// WeddingHandler handles wedding portfolio requests.
type WeddingHandler struct {
	service  services.WeddingServiceProvider
	store    *upload.Store
	eventSvc services.EventServiceProvider
}

// NewWeddingHandler creates a new WeddingHandler.
func NewWeddingHandler(service services.WeddingServiceProvider, store *upload.Store, eventSvc services.EventServiceProvider) *WeddingHandler {
	return &WeddingHandler{service: service, store: store, eventSvc: eventSvc}
}

// GetAll returns weddings newest first, capped by the limit query param.
func (h *WeddingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	weddings, err := h.service.GetAll(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load weddings")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, weddings)
}

// Get returns a single wedding by id.
func (h *WeddingHandler) Get(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}
	writeJSON(w, http.StatusOK, wedding)
}

// Create stores a new wedding with its uploaded cover image.
func (h *WeddingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	coverURL, ok := saveFormFile(w, r, h.store, "coverImage", "wedding")
	if !ok {
		return
	}

	wedding, err := h.service.Create(
		coverURL,
		r.FormValue("brideName"),
		r.FormValue("groomName"),
		r.FormValue("date"),
		r.FormValue("location"),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create wedding")
		h.store.Delete(coverURL)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("wedding", "info", "Wedding added: "+wedding.BrideName+" & "+wedding.GroomName)
	writeJSON(w, http.StatusCreated, wedding)
}

// Update applies a partial multipart update; a new cover image replaces and
// deletes the old one.
func (h *WeddingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}

	var coverURL *string
	if file, header, err := r.FormFile("coverImage"); err == nil {
		defer file.Close()
		url, err := h.store.Save(file, header, "wedding")
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.store.Delete(existing.CoverImage)
		coverURL = &url
	}

	wedding, err := h.service.Update(
		id,
		optionalFormValue(r, "brideName"),
		optionalFormValue(r, "groomName"),
		optionalFormValue(r, "date"),
		optionalFormValue(r, "location"),
		coverURL,
	)
	if err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}

	h.eventSvc.Record("wedding", "info", "Wedding updated: "+wedding.BrideName+" & "+wedding.GroomName)
	writeJSON(w, http.StatusOK, wedding)
}

// Delete removes a wedding along with its cover and gallery files.
func (h *WeddingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.service.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}

	h.store.Delete(wedding.CoverImage)
	for _, imageURL := range wedding.Images {
		h.store.Delete(imageURL)
	}

	h.eventSvc.Record("wedding", "info", "Wedding deleted: "+wedding.BrideName+" & "+wedding.GroomName)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Wedding deleted successfully"})
}

// AddImages uploads one or more gallery images for a wedding.
func (h *WeddingHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	if _, err := h.service.GetByID(id); err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeDetail(w, http.StatusBadRequest, "Missing file field: images")
		return
	}

	imageURLs := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "Unreadable upload")
			return
		}
		url, err := h.store.Save(file, header, "wedding")
		file.Close()
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		imageURLs = append(imageURLs, url)
	}

	wedding, err := h.service.AddImages(id, imageURLs)
	if err != nil {
		writeServiceError(w, err, "Wedding not found")
		return
	}

	h.eventSvc.Record("wedding", "info", "Gallery images added")
	writeJSON(w, http.StatusOK, wedding)
}

// DeleteImage removes one gallery image by index.
func (h *WeddingHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid image index")
		return
	}

	imageURL, err := h.service.RemoveImage(id, index)
	if err != nil {
		writeServiceError(w, err, "Image not found")
		return
	}

	h.store.Delete(imageURL)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// PackageHandler handles photography package requests.
type PackageHandler struct {
	service  services.PackageServiceProvider
	store    *upload.Store
	eventSvc services.EventServiceProvider
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service services.PackageServiceProvider, store *upload.Store, eventSvc services.EventServiceProvider) *PackageHandler {
	return &PackageHandler{service: service, store: store, eventSvc: eventSvc}
}

// GetAll returns all packages in display order.
func (h *PackageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load packages")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

// Create stores a new package with its uploaded thumbnail.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	thumbURL, ok := saveFormFile(w, r, h.store, "thumbnail", "package")
	if !ok {
		return
	}

	pkg, err := h.service.Create(
		thumbURL,
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("pricing"),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create package")
		h.store.Delete(thumbURL)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("package", "info", "Package added: "+pkg.Title)
	writeJSON(w, http.StatusCreated, pkg)
}

// Update applies a partial multipart update; a new thumbnail replaces and
// deletes the old one.
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		writeServiceError(w, err, "Package not found")
		return
	}

	var thumbURL *string
	if file, header, err := r.FormFile("thumbnail"); err == nil {
		defer file.Close()
		url, err := h.store.Save(file, header, "package")
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.store.Delete(existing.Thumbnail)
		thumbURL = &url
	}

	pkg, err := h.service.Update(
		id,
		optionalFormValue(r, "title"),
		optionalFormValue(r, "description"),
		optionalFormValue(r, "pricing"),
		thumbURL,
	)
	if err != nil {
		writeServiceError(w, err, "Package not found")
		return
	}

	h.eventSvc.Record("package", "info", "Package updated: "+pkg.Title)
	writeJSON(w, http.StatusOK, pkg)
}

// Delete removes a package along with its thumbnail and gallery files.
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Package not found")
		return
	}

	h.store.Delete(pkg.Thumbnail)
	for _, imageURL := range pkg.Images {
		h.store.Delete(imageURL)
	}

	h.eventSvc.Record("package", "info", "Package deleted: "+pkg.Title)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Package deleted successfully"})
}

// AddImages uploads one or more gallery images for a package.
func (h *PackageHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	if _, err := h.service.GetByID(id); err != nil {
		writeServiceError(w, err, "Package not found")
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
		url, err := h.store.Save(file, header, "package")
		file.Close()
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		imageURLs = append(imageURLs, url)
	}

	pkg, err := h.service.AddImages(id, imageURLs)
	if err != nil {
		writeServiceError(w, err, "Package not found")
		return
	}

	h.eventSvc.Record("package", "info", "Package gallery images added")
	writeJSON(w, http.StatusOK, pkg)
}

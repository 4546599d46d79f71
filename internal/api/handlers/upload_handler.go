package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

// UploadHandler serves previously uploaded image files.
type UploadHandler struct {
	store *upload.Store
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve streams a stored file by filename.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, ok := h.store.Resolve(filename)
	if !ok {
		writeDetail(w, http.StatusNotFound, "File not found")
		return
	}
	http.ServeFile(w, r, path)
}

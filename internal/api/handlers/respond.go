package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail sends the FastAPI-compatible error shape the frontend expects.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeServiceError maps a service failure onto the right status code.
func writeServiceError(w http.ResponseWriter, err error, notFoundDetail string) {
	if errors.Is(err, services.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, notFoundDetail)
		return
	}
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}

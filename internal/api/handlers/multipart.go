package handlers

import (
	"errors"
	"net/http"

	"github.com/sayantonsadhu/portfolio-be/internal/upload"
)

const maxMultipartMemory = 32 << 20

// saveFormFile saves the uploaded file under the given form field, returning
// its public URL. Writes the error response itself on failure.
func saveFormFile(w http.ResponseWriter, r *http.Request, store *upload.Store, field, prefix string) (string, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Missing file field: "+field)
		return "", false
	}
	defer file.Close()

	url, err := store.Save(file, header, prefix)
	if err != nil {
		if errors.Is(err, upload.ErrFileType) || errors.Is(err, upload.ErrFileTooLarge) {
			writeDetail(w, http.StatusBadRequest, err.Error())
		} else {
			writeDetail(w, http.StatusInternalServerError, "Failed to save file")
		}
		return "", false
	}
	return url, true
}

// optionalFormValue returns a pointer to the form value, or nil when the
// field was absent or empty. Partial multipart updates treat empty as unset.
func optionalFormValue(r *http.Request, field string) *string {
	v := r.FormValue(field)
	if v == "" {
		return nil
	}
	return &v
}

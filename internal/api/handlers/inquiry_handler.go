package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// InquiryHandler handles contact form requests.
type InquiryHandler struct {
	service  services.InquiryServiceProvider
	eventSvc services.EventServiceProvider
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(service services.InquiryServiceProvider, eventSvc services.EventServiceProvider) *InquiryHandler {
	return &InquiryHandler{service: service, eventSvc: eventSvc}
}

// Create stores a public contact inquiry.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.ContactInquiryCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.service.Create(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store contact inquiry")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.eventSvc.Record("inquiry", "info", "New inquiry from "+inquiry.Name)
	writeJSON(w, http.StatusCreated, inquiry)
}

// GetAll returns inquiries for the admin, newest first.
func (h *InquiryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.service.GetRecent(100)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load contact inquiries")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

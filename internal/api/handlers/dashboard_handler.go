package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// DashboardHandler serves aggregate statistics for the admin dashboard.
type DashboardHandler struct {
	service services.DashboardServiceProvider
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service services.DashboardServiceProvider) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats returns content counts together with host resource usage.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats()
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect dashboard stats")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

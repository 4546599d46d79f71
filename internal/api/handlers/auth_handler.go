package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/auth"
	"github.com/sayantonsadhu/portfolio-be/internal/metrics"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// AuthHandler handles admin login and credential management.
type AuthHandler struct {
	service  services.CredentialServiceProvider
	eventSvc services.EventServiceProvider
	metrics  *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.CredentialServiceProvider, eventSvc services.EventServiceProvider, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{service: service, eventSvc: eventSvc, metrics: m}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangeCredentialsPayload defines the structure for credential rotation.
type ChangeCredentialsPayload struct {
	OldPassword string  `json:"old_password"`
	NewUsername *string `json:"new_username"`
	NewPassword *string `json:"new_password"`
}

// Login authenticates the admin and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cred, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Msg("Failed admin login attempt")
			h.metrics.RecordAuthFailure()
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("Login failed on credential lookup")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := auth.IssueToken(cred.Username, auth.TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// GetCredentials returns the admin username and last update time. The hash
// never appears in a response.
func (h *AuthHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	cred, err := h.service.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load admin credentials")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.CredentialInfo{Username: cred.Username, UpdatedAt: cred.UpdatedAt})
}

// ChangeCredentials rotates the admin username and/or password after
// verifying the old password.
func (h *AuthHandler) ChangeCredentials(w http.ResponseWriter, r *http.Request) {
	var payload ChangeCredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cred, err := h.service.ChangeCredentials(payload.OldPassword, payload.NewUsername, payload.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIncorrectPassword):
			writeDetail(w, http.StatusBadRequest, "Incorrect password")
		case errors.Is(err, services.ErrPasswordTooShort):
			writeDetail(w, http.StatusBadRequest, "Password must be at least 6 characters")
		default:
			log.Error().Err(err).Msg("Failed to change admin credentials")
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.eventSvc.Record("credentials", "info", "Admin credentials updated")
	writeJSON(w, http.StatusOK, models.CredentialInfo{Username: cred.Username, UpdatedAt: cred.UpdatedAt})
}

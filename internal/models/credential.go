package models

import "time"

// AdminCredential is the single admin identity for the deployment.
// Exactly one row exists; it is provisioned with defaults on first use
// and only ever updated in place.
type AdminCredential struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CredentialInfo is the shape returned from credential endpoints.
// The hash never leaves the service layer.
type CredentialInfo struct {
	Username  string    `json:"username"`
	UpdatedAt time.Time `json:"updated_at"`
}

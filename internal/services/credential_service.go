package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any failed login. Bad username and
// bad password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrIncorrectPassword is returned when the old password check fails during
// a credential change.
var ErrIncorrectPassword = errors.New("incorrect password")

// ErrPasswordTooShort is returned for new passwords under 6 characters.
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// CredentialServiceProvider defines the interface for admin credential management.
type CredentialServiceProvider interface {
	GetOrCreate() (models.AdminCredential, error)
	Authenticate(username, password string) (models.AdminCredential, error)
	ChangeCredentials(oldPassword string, newUsername, newPassword *string) (models.AdminCredential, error)
}

// CredentialService manages the singleton admin credential record.
type CredentialService struct {
	db              *sql.DB
	defaultUsername string
	defaultPassword string
}

// NewCredentialService creates a new CredentialService. The defaults are
// used to provision the record when none exists yet.
func NewCredentialService(db *sql.DB, defaultUsername, defaultPassword string) *CredentialService {
	return &CredentialService{
		db:              db,
		defaultUsername: defaultUsername,
		defaultPassword: defaultPassword,
	}
}

// GetOrCreate fetches the admin credential record, provisioning the default
// one on first access.
func (s *CredentialService) GetOrCreate() (models.AdminCredential, error) {
	var cred models.AdminCredential
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at, updated_at FROM admin_credentials LIMIT 1")
	err := row.Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.CreatedAt, &cred.UpdatedAt)
	if err == nil {
		return cred, nil
	}
	if err != sql.ErrNoRows {
		return models.AdminCredential{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.AdminCredential{}, fmt.Errorf("failed to hash default password: %w", err)
	}

	now := time.Now().UTC()
	cred = models.AdminCredential{
		ID:           uuid.New().String(),
		Username:     s.defaultUsername,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = s.db.Exec(
		"INSERT INTO admin_credentials (id, username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		cred.ID, cred.Username, cred.PasswordHash, cred.CreatedAt, cred.UpdatedAt,
	)
	if err != nil {
		return models.AdminCredential{}, err
	}
	return cred, nil
}

// Authenticate verifies a username/password pair against the stored record.
func (s *CredentialService) Authenticate(username, password string) (models.AdminCredential, error) {
	cred, err := s.GetOrCreate()
	if err != nil {
		return models.AdminCredential{}, err
	}

	if username != cred.Username {
		// Burn a bcrypt compare anyway so both failure paths cost about
		// the same.
		bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password))
		return models.AdminCredential{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return models.AdminCredential{}, ErrInvalidCredentials
	}

	return cred, nil
}

// ChangeCredentials verifies the old password, then applies any combination
// of new username and new password. With neither set it still succeeds and
// refreshes updated_at, which the admin UI relies on.
func (s *CredentialService) ChangeCredentials(oldPassword string, newUsername, newPassword *string) (models.AdminCredential, error) {
	cred, err := s.GetOrCreate()
	if err != nil {
		return models.AdminCredential{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(oldPassword)) != nil {
		return models.AdminCredential{}, ErrIncorrectPassword
	}

	if newPassword != nil && len(*newPassword) < 6 {
		return models.AdminCredential{}, ErrPasswordTooShort
	}

	if newUsername != nil && *newUsername != "" {
		cred.Username = *newUsername
	}
	if newPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*newPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.AdminCredential{}, fmt.Errorf("failed to hash new password: %w", err)
		}
		cred.PasswordHash = string(hash)
	}
	cred.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		"UPDATE admin_credentials SET username = ?, password_hash = ?, updated_at = ? WHERE id = ?",
		cred.Username, cred.PasswordHash, cred.UpdatedAt, cred.ID,
	)
	if err != nil {
		return models.AdminCredential{}, err
	}
	return cred, nil
}

package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// SettingsServiceProvider defines the interface for site settings.
type SettingsServiceProvider interface {
	GetOrCreate() (models.SiteSettings, error)
	Update(update models.SiteSettingsUpdate) (models.SiteSettings, error)
	SetLogoURL(logoURL string) (models.SiteSettings, error)
}

// SettingsService manages the singleton site settings record.
type SettingsService struct {
	db *sql.DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetOrCreate fetches the site settings, provisioning defaults on first access.
func (s *SettingsService) GetOrCreate() (models.SiteSettings, error) {
	var settings models.SiteSettings
	row := s.db.QueryRow("SELECT id, site_name, logo_url, phone, email, address FROM site_settings LIMIT 1")
	err := row.Scan(&settings.ID, &settings.SiteName, &settings.LogoURL, &settings.Phone, &settings.Email, &settings.Address)
	if err == nil {
		return settings, nil
	}
	if err != sql.ErrNoRows {
		return models.SiteSettings{}, err
	}

	settings = models.SiteSettings{
		ID:       uuid.New().String(),
		SiteName: "Sayanton Sadhu Photography",
		Phone:    "+91 98765 43210",
		Email:    "hello@sayantonsadhu.com",
		Address:  "Kolkata, West Bengal, India",
	}
	_, err = s.db.Exec(
		"INSERT INTO site_settings (id, site_name, logo_url, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)",
		settings.ID, settings.SiteName, settings.LogoURL, settings.Phone, settings.Email, settings.Address,
	)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Update applies a partial settings update.
func (s *SettingsService) Update(update models.SiteSettingsUpdate) (models.SiteSettings, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return models.SiteSettings{}, err
	}

	if update.SiteName != nil {
		settings.SiteName = *update.SiteName
	}
	if update.Phone != nil {
		settings.Phone = *update.Phone
	}
	if update.Email != nil {
		settings.Email = *update.Email
	}
	if update.Address != nil {
		settings.Address = *update.Address
	}

	_, err = s.db.Exec(
		"UPDATE site_settings SET site_name = ?, phone = ?, email = ?, address = ? WHERE id = ?",
		settings.SiteName, settings.Phone, settings.Email, settings.Address, settings.ID,
	)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// SetLogoURL stores the URL of a freshly uploaded logo.
func (s *SettingsService) SetLogoURL(logoURL string) (models.SiteSettings, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return models.SiteSettings{}, err
	}

	settings.LogoURL = &logoURL
	_, err = s.db.Exec("UPDATE site_settings SET logo_url = ? WHERE id = ?", logoURL, settings.ID)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

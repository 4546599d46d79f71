package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// FacebookServiceProvider defines the interface for Facebook integration settings.
type FacebookServiceProvider interface {
	GetOrCreate() (models.FacebookSettings, error)
	Update(update models.FacebookSettingsUpdate) (models.FacebookSettings, error)
}

// FacebookService manages the singleton Facebook feed configuration.
type FacebookService struct {
	db *sql.DB
}

// NewFacebookService creates a new FacebookService.
func NewFacebookService(db *sql.DB) *FacebookService {
	return &FacebookService{db: db}
}

// GetOrCreate fetches the Facebook settings, provisioning a disabled default
// on first access.
func (s *FacebookService) GetOrCreate() (models.FacebookSettings, error) {
	var settings models.FacebookSettings
	row := s.db.QueryRow("SELECT id, page_id, access_token, posts_limit, enabled FROM facebook_settings LIMIT 1")
	err := row.Scan(&settings.ID, &settings.PageID, &settings.AccessToken, &settings.PostsLimit, &settings.Enabled)
	if err == nil {
		return settings, nil
	}
	if err != sql.ErrNoRows {
		return models.FacebookSettings{}, err
	}

	settings = models.FacebookSettings{ID: uuid.New().String(), PostsLimit: 6, Enabled: false}
	_, err = s.db.Exec(
		"INSERT INTO facebook_settings (id, page_id, access_token, posts_limit, enabled) VALUES (?, '', '', ?, 0)",
		settings.ID, settings.PostsLimit,
	)
	if err != nil {
		return models.FacebookSettings{}, err
	}
	return settings, nil
}

// Update applies a partial settings update.
func (s *FacebookService) Update(update models.FacebookSettingsUpdate) (models.FacebookSettings, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return models.FacebookSettings{}, err
	}

	if update.PageID != nil {
		settings.PageID = *update.PageID
	}
	if update.AccessToken != nil {
		settings.AccessToken = *update.AccessToken
	}
	if update.PostsLimit != nil {
		settings.PostsLimit = *update.PostsLimit
	}
	if update.Enabled != nil {
		settings.Enabled = *update.Enabled
	}

	_, err = s.db.Exec(
		"UPDATE facebook_settings SET page_id = ?, access_token = ?, posts_limit = ?, enabled = ? WHERE id = ?",
		settings.PageID, settings.AccessToken, settings.PostsLimit, settings.Enabled, settings.ID,
	)
	if err != nil {
		return models.FacebookSettings{}, err
	}
	return settings, nil
}

package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// YouTubeServiceProvider defines the interface for YouTube integration settings.
type YouTubeServiceProvider interface {
	GetOrCreate() (models.YouTubeSettings, error)
	Update(update models.YouTubeSettingsUpdate) (models.YouTubeSettings, error)
}

// YouTubeService manages the singleton YouTube feed configuration.
type YouTubeService struct {
	db *sql.DB
}

// NewYouTubeService creates a new YouTubeService.
func NewYouTubeService(db *sql.DB) *YouTubeService {
	return &YouTubeService{db: db}
}

// GetOrCreate fetches the YouTube settings, provisioning a disabled default
// on first access.
func (s *YouTubeService) GetOrCreate() (models.YouTubeSettings, error) {
	var settings models.YouTubeSettings
	row := s.db.QueryRow("SELECT id, channel_id, api_key, max_videos, enabled, section_title, section_description FROM youtube_settings LIMIT 1")
	err := row.Scan(&settings.ID, &settings.ChannelID, &settings.APIKey, &settings.MaxVideos, &settings.Enabled, &settings.SectionTitle, &settings.SectionDescription)
	if err == nil {
		return settings, nil
	}
	if err != sql.ErrNoRows {
		return models.YouTubeSettings{}, err
	}

	settings = models.YouTubeSettings{
		ID:                 uuid.New().String(),
		MaxVideos:          6,
		Enabled:            false,
		SectionTitle:       "YouTube Stories",
		SectionDescription: "Watch our latest stories and behind-the-scenes",
	}
	_, err = s.db.Exec(
		"INSERT INTO youtube_settings (id, channel_id, api_key, max_videos, enabled, section_title, section_description) VALUES (?, '', '', ?, 0, ?, ?)",
		settings.ID, settings.MaxVideos, settings.SectionTitle, settings.SectionDescription,
	)
	if err != nil {
		return models.YouTubeSettings{}, err
	}
	return settings, nil
}

// Update applies a partial settings update.
func (s *YouTubeService) Update(update models.YouTubeSettingsUpdate) (models.YouTubeSettings, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return models.YouTubeSettings{}, err
	}

	if update.ChannelID != nil {
		settings.ChannelID = *update.ChannelID
	}
	if update.APIKey != nil {
		settings.APIKey = *update.APIKey
	}
	if update.MaxVideos != nil {
		settings.MaxVideos = *update.MaxVideos
	}
	if update.Enabled != nil {
		settings.Enabled = *update.Enabled
	}
	if update.SectionTitle != nil {
		settings.SectionTitle = *update.SectionTitle
	}
	if update.SectionDescription != nil {
		settings.SectionDescription = *update.SectionDescription
	}

	_, err = s.db.Exec(
		"UPDATE youtube_settings SET channel_id = ?, api_key = ?, max_videos = ?, enabled = ?, section_title = ?, section_description = ? WHERE id = ?",
		settings.ChannelID, settings.APIKey, settings.MaxVideos, settings.Enabled, settings.SectionTitle, settings.SectionDescription, settings.ID,
	)
	if err != nil {
		return models.YouTubeSettings{}, err
	}
	return settings, nil
}

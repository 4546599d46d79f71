package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// SocialServiceProvider defines the interface for social media links.
type SocialServiceProvider interface {
	GetOrCreate() (models.SocialMediaLinks, error)
	Update(update models.SocialMediaLinksUpdate) (models.SocialMediaLinks, error)
}

// SocialService manages the singleton social media links record.
type SocialService struct {
	db *sql.DB
}

// NewSocialService creates a new SocialService.
func NewSocialService(db *sql.DB) *SocialService {
	return &SocialService{db: db}
}

// GetOrCreate fetches the social links, provisioning an empty enabled record
// on first access.
func (s *SocialService) GetOrCreate() (models.SocialMediaLinks, error) {
	var links models.SocialMediaLinks
	row := s.db.QueryRow("SELECT id, facebook, instagram, youtube, twitter, linkedin, pinterest, tiktok, enabled FROM social_media_links LIMIT 1")
	err := row.Scan(&links.ID, &links.Facebook, &links.Instagram, &links.YouTube, &links.Twitter, &links.LinkedIn, &links.Pinterest, &links.TikTok, &links.Enabled)
	if err == nil {
		return links, nil
	}
	if err != sql.ErrNoRows {
		return models.SocialMediaLinks{}, err
	}

	links = models.SocialMediaLinks{ID: uuid.New().String(), Enabled: true}
	_, err = s.db.Exec("INSERT INTO social_media_links (id, enabled) VALUES (?, 1)", links.ID)
	if err != nil {
		return models.SocialMediaLinks{}, err
	}
	return links, nil
}

// Update applies a partial links update.
func (s *SocialService) Update(update models.SocialMediaLinksUpdate) (models.SocialMediaLinks, error) {
	links, err := s.GetOrCreate()
	if err != nil {
		return models.SocialMediaLinks{}, err
	}

	if update.Facebook != nil {
		links.Facebook = update.Facebook
	}
	if update.Instagram != nil {
		links.Instagram = update.Instagram
	}
	if update.YouTube != nil {
		links.YouTube = update.YouTube
	}
	if update.Twitter != nil {
		links.Twitter = update.Twitter
	}
	if update.LinkedIn != nil {
		links.LinkedIn = update.LinkedIn
	}
	if update.Pinterest != nil {
		links.Pinterest = update.Pinterest
	}
	if update.TikTok != nil {
		links.TikTok = update.TikTok
	}
	if update.Enabled != nil {
		links.Enabled = *update.Enabled
	}

	_, err = s.db.Exec(
		"UPDATE social_media_links SET facebook = ?, instagram = ?, youtube = ?, twitter = ?, linkedin = ?, pinterest = ?, tiktok = ?, enabled = ? WHERE id = ?",
		links.Facebook, links.Instagram, links.YouTube, links.Twitter, links.LinkedIn, links.Pinterest, links.TikTok, links.Enabled, links.ID,
	)
	if err != nil {
		return models.SocialMediaLinks{}, err
	}
	return links, nil
}

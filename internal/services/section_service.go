package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// Default heading copy per section key, provisioned on first read.
var sectionDefaults = map[string]models.SectionContent{
	"films":    {Title: "Wedding Films", Subtitle: strPtr("Cinematic stories of your special day")},
	"about":    {Title: "About Us", Subtitle: strPtr("The people behind the lens")},
	"contact":  {Title: "Get In Touch", Subtitle: strPtr("Let's plan your wedding photography")},
	"weddings": {Title: "Recent Weddings", Subtitle: strPtr("Love stories we have captured")},
	"packages": {Title: "Our Packages", Subtitle: strPtr("Photography packages for every celebration")},
}

func strPtr(s string) *string { return &s }

// SectionServiceProvider defines the interface for section heading content.
type SectionServiceProvider interface {
	GetOrCreate(key string) (models.SectionContent, error)
	Update(key string, update models.SectionContentUpdate) (models.SectionContent, error)
}

// SectionService manages the per-section CMS heading copy.
type SectionService struct {
	db *sql.DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *sql.DB) *SectionService {
	return &SectionService{db: db}
}

// GetOrCreate fetches the content for a section key, provisioning the default
// copy on first access. Unknown keys are rejected.
func (s *SectionService) GetOrCreate(key string) (models.SectionContent, error) {
	def, known := sectionDefaults[key]
	if !known {
		return models.SectionContent{}, ErrNotFound
	}

	var sc models.SectionContent
	row := s.db.QueryRow("SELECT id, section_key, title, subtitle, description FROM section_content WHERE section_key = ?", key)
	err := row.Scan(&sc.ID, &sc.SectionKey, &sc.Title, &sc.Subtitle, &sc.Description)
	if err == nil {
		return sc, nil
	}
	if err != sql.ErrNoRows {
		return models.SectionContent{}, err
	}

	sc = def
	sc.ID = uuid.New().String()
	sc.SectionKey = key
	_, err = s.db.Exec(
		"INSERT INTO section_content (id, section_key, title, subtitle, description) VALUES (?, ?, ?, ?, ?)",
		sc.ID, sc.SectionKey, sc.Title, sc.Subtitle, sc.Description,
	)
	if err != nil {
		return models.SectionContent{}, err
	}
	return sc, nil
}

// Update applies a partial update to a section's content.
func (s *SectionService) Update(key string, update models.SectionContentUpdate) (models.SectionContent, error) {
	sc, err := s.GetOrCreate(key)
	if err != nil {
		return models.SectionContent{}, err
	}

	if update.Title != nil {
		sc.Title = *update.Title
	}
	if update.Subtitle != nil {
		sc.Subtitle = update.Subtitle
	}
	if update.Description != nil {
		sc.Description = update.Description
	}

	_, err = s.db.Exec(
		"UPDATE section_content SET title = ?, subtitle = ?, description = ? WHERE section_key = ?",
		sc.Title, sc.Subtitle, sc.Description, key,
	)
	if err != nil {
		return models.SectionContent{}, err
	}
	return sc, nil
}

package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// AboutServiceProvider defines the interface for the about section.
type AboutServiceProvider interface {
	GetOrCreate() (models.About, error)
	Update(name, bio, image *string) (models.About, error)
}

// AboutService manages the singleton about section.
type AboutService struct {
	db *sql.DB
}

// NewAboutService creates a new AboutService.
func NewAboutService(db *sql.DB) *AboutService {
	return &AboutService{db: db}
}

// GetOrCreate fetches the about section, provisioning a default on first access.
func (s *AboutService) GetOrCreate() (models.About, error) {
	var about models.About
	row := s.db.QueryRow("SELECT id, image, name, bio FROM about LIMIT 1")
	err := row.Scan(&about.ID, &about.Image, &about.Name, &about.Bio)
	if err == nil {
		return about, nil
	}
	if err != sql.ErrNoRows {
		return models.About{}, err
	}

	about = models.About{
		ID:    uuid.New().String(),
		Image: "https://images.pexels.com/photos/3775262/pexels-photo-3775262.jpeg?w=800&q=80",
		Name:  "Sayanton Sadhu Photography",
		Bio: "Capturing genuine emotions and once-in-a-lifetime moments with utmost care and professionalism. " +
			"From pre-wedding shoots to post-wedding celebrations, we create timeless memories that tell your unique love story. " +
			"Our editorial style combines candid moments with artistic composition, ensuring every frame reflects the beauty and emotion of your special day.",
	}
	_, err = s.db.Exec("INSERT INTO about (id, image, name, bio) VALUES (?, ?, ?, ?)", about.ID, about.Image, about.Name, about.Bio)
	if err != nil {
		return models.About{}, err
	}
	return about, nil
}

// Update applies a partial about update.
func (s *AboutService) Update(name, bio, image *string) (models.About, error) {
	about, err := s.GetOrCreate()
	if err != nil {
		return models.About{}, err
	}

	if name != nil {
		about.Name = *name
	}
	if bio != nil {
		about.Bio = *bio
	}
	if image != nil {
		about.Image = *image
	}

	_, err = s.db.Exec("UPDATE about SET image = ?, name = ?, bio = ? WHERE id = ?", about.Image, about.Name, about.Bio, about.ID)
	if err != nil {
		return models.About{}, err
	}
	return about, nil
}

package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// FilmServiceProvider defines the interface for the featured film.
type FilmServiceProvider interface {
	GetFeatured() (models.Film, error)
	UpdateFeatured(update models.FilmUpdate) (models.Film, error)
}

// FilmService manages the featured wedding film.
type FilmService struct {
	db *sql.DB
}

// NewFilmService creates a new FilmService.
func NewFilmService(db *sql.DB) *FilmService {
	return &FilmService{db: db}
}

// GetFeatured fetches the featured film, provisioning a default on first access.
func (s *FilmService) GetFeatured() (models.Film, error) {
	var film models.Film
	row := s.db.QueryRow("SELECT id, title, video_url, thumbnail, is_featured FROM films WHERE is_featured = 1 LIMIT 1")
	err := row.Scan(&film.ID, &film.Title, &film.VideoURL, &film.Thumbnail, &film.IsFeatured)
	if err == nil {
		return film, nil
	}
	if err != sql.ErrNoRows {
		return models.Film{}, err
	}

	film = models.Film{
		ID:         uuid.New().String(),
		Title:      "Wedding Film",
		VideoURL:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Thumbnail:  "https://images.unsplash.com/photo-1617724975854-70b5d0cedb0a?w=1200&q=80",
		IsFeatured: true,
	}
	_, err = s.db.Exec(
		"INSERT INTO films (id, title, video_url, thumbnail, is_featured) VALUES (?, ?, ?, ?, 1)",
		film.ID, film.Title, film.VideoURL, film.Thumbnail,
	)
	if err != nil {
		return models.Film{}, err
	}
	return film, nil
}

// UpdateFeatured sets the featured film's title and video URL.
func (s *FilmService) UpdateFeatured(update models.FilmUpdate) (models.Film, error) {
	film, err := s.GetFeatured()
	if err != nil {
		return models.Film{}, err
	}

	film.Title = update.Title
	film.VideoURL = update.VideoURL
	_, err = s.db.Exec("UPDATE films SET title = ?, video_url = ? WHERE id = ?", film.Title, film.VideoURL, film.ID)
	if err != nil {
		return models.Film{}, err
	}
	return film, nil
}

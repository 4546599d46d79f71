package services

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// WeddingServiceProvider defines the interface for wedding portfolio management.
type WeddingServiceProvider interface {
	GetAll(limit int) ([]models.Wedding, error)
	GetByID(id string) (models.Wedding, error)
	Create(coverImage, brideName, groomName, date, location string) (models.Wedding, error)
	Update(id string, brideName, groomName, date, location, coverImage *string) (models.Wedding, error)
	Delete(id string) (models.Wedding, error)
	AddImages(id string, imageURLs []string) (models.Wedding, error)
	RemoveImage(id string, index int) (string, error)
}

// WeddingService provides business logic for the wedding portfolio.
type WeddingService struct {
	db *sql.DB
}

// NewWeddingService creates a new WeddingService.
func NewWeddingService(db *sql.DB) *WeddingService {
	return &WeddingService{db: db}
}

const weddingColumns = "id, cover_image, bride_name, groom_name, wedding_date, location, images_json, created_at"

func scanWedding(row interface{ Scan(...any) error }) (models.Wedding, error) {
	var w models.Wedding
	var imagesJSON string
	err := row.Scan(&w.ID, &w.CoverImage, &w.BrideName, &w.GroomName, &w.Date, &w.Location, &imagesJSON, &w.CreatedAt)
	if err != nil {
		return models.Wedding{}, err
	}
	if err := json.Unmarshal([]byte(imagesJSON), &w.Images); err != nil {
		w.Images = []string{}
	}
	if w.Images == nil {
		w.Images = []string{}
	}
	return w, nil
}

// GetAll retrieves weddings sorted newest first, capped at limit.
func (s *WeddingService) GetAll(limit int) ([]models.Wedding, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query("SELECT "+weddingColumns+" FROM weddings ORDER BY wedding_date DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weddings := []models.Wedding{}
	for rows.Next() {
		w, err := scanWedding(rows)
		if err != nil {
			return nil, err
		}
		weddings = append(weddings, w)
	}
	return weddings, rows.Err()
}

// GetByID retrieves a single wedding.
func (s *WeddingService) GetByID(id string) (models.Wedding, error) {
	row := s.db.QueryRow("SELECT "+weddingColumns+" FROM weddings WHERE id = ?", id)
	w, err := scanWedding(row)
	if err == sql.ErrNoRows {
		return models.Wedding{}, ErrNotFound
	}
	if err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// Create stores a new wedding entry.
func (s *WeddingService) Create(coverImage, brideName, groomName, date, location string) (models.Wedding, error) {
	w := models.Wedding{
		ID:         uuid.New().String(),
		CoverImage: coverImage,
		BrideName:  brideName,
		GroomName:  groomName,
		Date:       date,
		Location:   location,
		Images:     []string{},
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO weddings (id, cover_image, bride_name, groom_name, wedding_date, location, images_json, created_at) VALUES (?, ?, ?, ?, ?, ?, '[]', ?)",
		w.ID, w.CoverImage, w.BrideName, w.GroomName, w.Date, w.Location, w.CreatedAt,
	)
	if err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// Update applies a partial update. A non-nil coverImage replaces the stored one.
func (s *WeddingService) Update(id string, brideName, groomName, date, location, coverImage *string) (models.Wedding, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return models.Wedding{}, err
	}

	if brideName != nil {
		w.BrideName = *brideName
	}
	if groomName != nil {
		w.GroomName = *groomName
	}
	if date != nil {
		w.Date = *date
	}
	if location != nil {
		w.Location = *location
	}
	if coverImage != nil {
		w.CoverImage = *coverImage
	}

	_, err = s.db.Exec(
		"UPDATE weddings SET cover_image = ?, bride_name = ?, groom_name = ?, wedding_date = ?, location = ? WHERE id = ?",
		w.CoverImage, w.BrideName, w.GroomName, w.Date, w.Location, id,
	)
	if err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// Delete removes a wedding and returns it so the caller can clean up its files.
func (s *WeddingService) Delete(id string) (models.Wedding, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return models.Wedding{}, err
	}
	if _, err := s.db.Exec("DELETE FROM weddings WHERE id = ?", id); err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// AddImages appends gallery image URLs to a wedding.
func (s *WeddingService) AddImages(id string, imageURLs []string) (models.Wedding, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return models.Wedding{}, err
	}

	w.Images = append(w.Images, imageURLs...)
	if err := s.writeImages(id, w.Images); err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// RemoveImage deletes the gallery image at the given index and returns its URL.
func (s *WeddingService) RemoveImage(id string, index int) (string, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(w.Images) {
		return "", ErrNotFound
	}

	removed := w.Images[index]
	w.Images = append(w.Images[:index], w.Images[index+1:]...)
	if err := s.writeImages(id, w.Images); err != nil {
		return "", err
	}
	return removed, nil
}

func (s *WeddingService) writeImages(id string, images []string) error {
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return err
	}
	_, err = s.db.Exec("UPDATE weddings SET images_json = ? WHERE id = ?", string(imagesJSON), id)
	return err
}

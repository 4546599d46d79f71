package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// CarouselServiceProvider defines the interface for hero carousel management.
type CarouselServiceProvider interface {
	GetEnabled() ([]models.HeroCarouselItem, error)
	GetAll() ([]models.HeroCarouselItem, error)
	GetByID(id string) (models.HeroCarouselItem, error)
	Create(url, alt string) (models.HeroCarouselItem, error)
	Update(id string, update models.HeroCarouselUpdate) (models.HeroCarouselItem, error)
	Reorder(reorder models.HeroCarouselReorder) error
	Delete(id string) (models.HeroCarouselItem, error)
}

// CarouselService provides business logic for the hero carousel.
type CarouselService struct {
	db *sql.DB
}

// NewCarouselService creates a new CarouselService.
func NewCarouselService(db *sql.DB) *CarouselService {
	return &CarouselService{db: db}
}

// GetEnabled retrieves only the enabled slides, in display order.
func (s *CarouselService) GetEnabled() ([]models.HeroCarouselItem, error) {
	return s.query("SELECT id, url, alt, display_order, enabled, created_at FROM hero_carousel WHERE enabled = 1 ORDER BY display_order ASC")
}

// GetAll retrieves every slide, in display order.
func (s *CarouselService) GetAll() ([]models.HeroCarouselItem, error) {
	return s.query("SELECT id, url, alt, display_order, enabled, created_at FROM hero_carousel ORDER BY display_order ASC")
}

func (s *CarouselService) query(stmt string) ([]models.HeroCarouselItem, error) {
	rows, err := s.db.Query(stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.HeroCarouselItem{}
	for rows.Next() {
		var item models.HeroCarouselItem
		if err := rows.Scan(&item.ID, &item.URL, &item.Alt, &item.Order, &item.Enabled, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID retrieves a single slide.
func (s *CarouselService) GetByID(id string) (models.HeroCarouselItem, error) {
	var item models.HeroCarouselItem
	row := s.db.QueryRow("SELECT id, url, alt, display_order, enabled, created_at FROM hero_carousel WHERE id = ?", id)
	err := row.Scan(&item.ID, &item.URL, &item.Alt, &item.Order, &item.Enabled, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return models.HeroCarouselItem{}, ErrNotFound
	}
	if err != nil {
		return models.HeroCarouselItem{}, err
	}
	return item, nil
}

// Create appends a new slide at the end of the display order.
func (s *CarouselService) Create(url, alt string) (models.HeroCarouselItem, error) {
	var maxOrder sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(display_order) FROM hero_carousel").Scan(&maxOrder); err != nil {
		return models.HeroCarouselItem{}, err
	}

	item := models.HeroCarouselItem{
		ID:        uuid.New().String(),
		URL:       url,
		Alt:       alt,
		Order:     int(maxOrder.Int64) + 1,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO hero_carousel (id, url, alt, display_order, enabled, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.URL, item.Alt, item.Order, item.Enabled, item.CreatedAt,
	)
	if err != nil {
		return models.HeroCarouselItem{}, err
	}
	return item, nil
}

// Update applies a partial slide update.
func (s *CarouselService) Update(id string, update models.HeroCarouselUpdate) (models.HeroCarouselItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return models.HeroCarouselItem{}, err
	}

	if update.Alt != nil {
		item.Alt = *update.Alt
	}
	if update.Enabled != nil {
		item.Enabled = *update.Enabled
	}

	_, err = s.db.Exec("UPDATE hero_carousel SET alt = ?, enabled = ? WHERE id = ?", item.Alt, item.Enabled, id)
	if err != nil {
		return models.HeroCarouselItem{}, err
	}
	return item, nil
}

// Reorder assigns new display positions in a single transaction.
func (s *CarouselService) Reorder(reorder models.HeroCarouselReorder) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range reorder.Items {
		if _, err := tx.Exec("UPDATE hero_carousel SET display_order = ? WHERE id = ?", item.Order, item.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes a slide and returns it so the caller can clean up its file.
func (s *CarouselService) Delete(id string) (models.HeroCarouselItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return models.HeroCarouselItem{}, err
	}
	if _, err := s.db.Exec("DELETE FROM hero_carousel WHERE id = ?", id); err != nil {
		return models.HeroCarouselItem{}, err
	}
	return item, nil
}

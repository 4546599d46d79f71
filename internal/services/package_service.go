package services

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// PackageServiceProvider defines the interface for photography packages.
type PackageServiceProvider interface {
	GetAll() ([]models.Package, error)
	GetByID(id string) (models.Package, error)
	Create(thumbnail, title, description, pricing string) (models.Package, error)
	Update(id string, title, description, pricing, thumbnail *string) (models.Package, error)
	Delete(id string) (models.Package, error)
	AddImages(id string, imageURLs []string) (models.Package, error)
}

// PackageService provides business logic for photography packages.
type PackageService struct {
	db *sql.DB
}

// NewPackageService creates a new PackageService.
func NewPackageService(db *sql.DB) *PackageService {
	return &PackageService{db: db}
}

const packageColumns = "id, title, thumbnail, description, images_json, pricing, display_order"

func scanPackage(row interface{ Scan(...any) error }) (models.Package, error) {
	var p models.Package
	var imagesJSON string
	err := row.Scan(&p.ID, &p.Title, &p.Thumbnail, &p.Description, &imagesJSON, &p.Pricing, &p.Order)
	if err != nil {
		return models.Package{}, err
	}
	if err := json.Unmarshal([]byte(imagesJSON), &p.Images); err != nil {
		p.Images = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

// GetAll retrieves all packages in display order.
func (s *PackageService) GetAll() ([]models.Package, error) {
	rows, err := s.db.Query("SELECT " + packageColumns + " FROM packages ORDER BY display_order ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// GetByID retrieves a single package.
func (s *PackageService) GetByID(id string) (models.Package, error) {
	row := s.db.QueryRow("SELECT "+packageColumns+" FROM packages WHERE id = ?", id)
	p, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return models.Package{}, ErrNotFound
	}
	if err != nil {
		return models.Package{}, err
	}
	return p, nil
}

// Create appends a new package at the end of the display order.
func (s *PackageService) Create(thumbnail, title, description, pricing string) (models.Package, error) {
	var maxOrder sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(display_order) FROM packages").Scan(&maxOrder); err != nil {
		return models.Package{}, err
	}

	p := models.Package{
		ID:          uuid.New().String(),
		Title:       title,
		Thumbnail:   thumbnail,
		Description: description,
		Images:      []string{},
		Pricing:     pricing,
		Order:       int(maxOrder.Int64) + 1,
	}
	_, err := s.db.Exec(
		"INSERT INTO packages (id, title, thumbnail, description, images_json, pricing, display_order) VALUES (?, ?, ?, ?, '[]', ?, ?)",
		p.ID, p.Title, p.Thumbnail, p.Description, p.Pricing, p.Order,
	)
	if err != nil {
		return models.Package{}, err
	}
	return p, nil
}

// Update applies a partial package update.
func (s *PackageService) Update(id string, title, description, pricing, thumbnail *string) (models.Package, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return models.Package{}, err
	}

	if title != nil {
		p.Title = *title
	}
	if description != nil {
		p.Description = *description
	}
	if pricing != nil {
		p.Pricing = *pricing
	}
	if thumbnail != nil {
		p.Thumbnail = *thumbnail
	}

	_, err = s.db.Exec(
		"UPDATE packages SET title = ?, thumbnail = ?, description = ?, pricing = ? WHERE id = ?",
		p.Title, p.Thumbnail, p.Description, p.Pricing, id,
	)
	if err != nil {
		return models.Package{}, err
	}
	return p, nil
}

// Delete removes a package and returns it so the caller can clean up its files.
func (s *PackageService) Delete(id string) (models.Package, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return models.Package{}, err
	}
	if _, err := s.db.Exec("DELETE FROM packages WHERE id = ?", id); err != nil {
		return models.Package{}, err
	}
	return p, nil
}

// AddImages appends gallery image URLs to a package.
func (s *PackageService) AddImages(id string, imageURLs []string) (models.Package, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return models.Package{}, err
	}

	p.Images = append(p.Images, imageURLs...)
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return models.Package{}, err
	}
	if _, err := s.db.Exec("UPDATE packages SET images_json = ? WHERE id = ?", string(imagesJSON), id); err != nil {
		return models.Package{}, err
	}
	return p, nil
}

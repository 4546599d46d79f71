package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// InquiryServiceProvider defines the interface for contact inquiries.
type InquiryServiceProvider interface {
	Create(payload models.ContactInquiryCreate) (models.ContactInquiry, error)
	GetRecent(limit int) ([]models.ContactInquiry, error)
}

// InquiryService stores booking inquiries from the contact form.
type InquiryService struct {
	db *sql.DB
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(db *sql.DB) *InquiryService {
	return &InquiryService{db: db}
}

// Create stores a new inquiry.
func (s *InquiryService) Create(payload models.ContactInquiryCreate) (models.ContactInquiry, error) {
	inquiry := models.ContactInquiry{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		WeddingDate: payload.WeddingDate,
		Message:     payload.Message,
		SubmittedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO contact_inquiries (id, name, email, phone, wedding_date, message, submitted_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.WeddingDate, inquiry.Message, inquiry.SubmittedAt,
	)
	if err != nil {
		return models.ContactInquiry{}, err
	}
	return inquiry, nil
}

// GetRecent retrieves inquiries, newest first.
func (s *InquiryService) GetRecent(limit int) ([]models.ContactInquiry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		"SELECT id, name, email, phone, wedding_date, message, submitted_at FROM contact_inquiries ORDER BY submitted_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []models.ContactInquiry{}
	for rows.Next() {
		var inquiry models.ContactInquiry
		if err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.WeddingDate, &inquiry.Message, &inquiry.SubmittedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

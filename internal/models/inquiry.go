package models

import "time"

// ContactInquiry is a booking inquiry submitted via the contact form.
type ContactInquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WeddingDate string    `json:"weddingDate"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactInquiryCreate is the public submission payload.
type ContactInquiryCreate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WeddingDate string `json:"weddingDate"`
	Message     string `json:"message"`
}

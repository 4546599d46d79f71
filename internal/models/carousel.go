package models

import "time"

// HeroCarouselItem is one slide of the landing-page carousel.
type HeroCarouselItem struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Alt       string    `json:"alt"`
	Order     int       `json:"order"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// HeroCarouselUpdate carries a partial slide update.
type HeroCarouselUpdate struct {
	Alt     *string `json:"alt"`
	Enabled *bool   `json:"enabled"`
}

// HeroCarouselPosition pairs a slide with its new display position.
type HeroCarouselPosition struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// HeroCarouselReorder assigns new display positions to existing slides.
type HeroCarouselReorder struct {
	Items []HeroCarouselPosition `json:"items"`
}

package models

// Package is one photography package offered on the site.
type Package struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Pricing     string   `json:"pricing"`
	Order       int      `json:"order"`
}

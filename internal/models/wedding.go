package models

import "time"

// Wedding is one portfolio entry with a cover image and a gallery.
type Wedding struct {
	ID         string    `json:"id"`
	CoverImage string    `json:"coverImage"`
	BrideName  string    `json:"brideName"`
	GroomName  string    `json:"groomName"`
	Date       string    `json:"date"`
	Location   string    `json:"location"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}

package models

import "time"

// ActivityEvent records one admin action for the dashboard activity feed.
type ActivityEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

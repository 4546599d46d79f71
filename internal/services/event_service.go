package services

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/websocket"
)

// EventServiceProvider defines the interface for the activity feed.
type EventServiceProvider interface {
	Record(eventType, level, message string)
	GetRecent(limit int) ([]models.ActivityEvent, error)
}

// EventService records admin activity and pushes it to connected dashboards.
type EventService struct {
	db  *sql.DB
	hub *websocket.Hub
}

// NewEventService creates a new EventService. hub may be nil when no live
// feed is wanted (tests).
func NewEventService(db *sql.DB, hub *websocket.Hub) *EventService {
	return &EventService{db: db, hub: hub}
}

// Record stores an activity event and broadcasts it. Activity logging must
// never fail the admin action it describes, so errors are only logged.
func (s *EventService) Record(eventType, level, message string) {
	event := models.ActivityEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO activity_events (id, type, level, message, created_at) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record activity event")
		return
	}

	if s.hub != nil {
		payload, err := json.Marshal(websocket.Message{Action: "activity_event", Payload: event})
		if err == nil {
			s.hub.TryBroadcast(payload)
		}
	}
}

// GetRecent retrieves the most recent activity events.
func (s *EventService) GetRecent(limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query("SELECT id, type, level, message, created_at FROM activity_events ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.ActivityEvent{}
	for rows.Next() {
		var event models.ActivityEvent
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

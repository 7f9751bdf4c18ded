package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeMatchRecorded = "match.recorded"
)

// Event is a domain event emitted by the write path
type Event struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// Publisher delivers events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// MatchRecordedPayload is the payload of a match.recorded event
type MatchRecordedPayload struct {
	MatchID     uuid.UUID `json:"match_id"`
	TeamID      uuid.UUID `json:"team_id"`
	Date        time.Time `json:"date"`
	PlayerCount int       `json:"player_count"`
	TotalGoals  int64     `json:"total_goals"`
}

// NewMatchRecorded builds a match.recorded event
func NewMatchRecorded(payload MatchRecordedPayload, now time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal match recorded payload: %w", err)
	}
	return Event{
		ID:        uuid.New(),
		TeamID:    payload.TeamID,
		EventType: EventTypeMatchRecorded,
		Payload:   data,
		CreatedAt: now,
	}, nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

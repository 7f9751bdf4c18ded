package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a member of a team's roster.
// TeamID is a back-reference; it may point at a team that no longer exists.
type Player struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	Name         string    `json:"name"`
	JerseyNumber int       `json:"jersey_number"`
	Position     string    `json:"position"`
	IsInjured    bool      `json:"is_injured"`
	CreatedAt    time.Time `json:"created_at"`
}

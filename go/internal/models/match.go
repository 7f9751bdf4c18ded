package models

import (
	"time"

	"github.com/google/uuid"
)

// Match represents a single fixture played by a team
type Match struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Opponent  string    `json:"opponent"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

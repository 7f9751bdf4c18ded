package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a club whose roster, matches and training are tracked
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

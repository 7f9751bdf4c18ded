package teams

import "time"

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"-"`
}

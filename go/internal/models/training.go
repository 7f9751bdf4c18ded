package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TrainingSession is a scheduled practice for a team
type TrainingSession struct {
	ID         uuid.UUID            `json:"id"`
	TeamID     uuid.UUID            `json:"team_id"`
	Date       time.Time            `json:"date"`
	Location   string               `json:"location"`
	Notes      string               `json:"notes"`
	Attendance []TrainingAttendance `json:"attendance,omitempty"`
	Drills     []TrainingDrill      `json:"drills,omitempty"`
	Photos     []TrainingPhoto      `json:"photos,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// TrainingAttendance records whether a player showed up to a session
type TrainingAttendance struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Attended  bool      `json:"attended"`
}

// TrainingDrill is one exercise in a session. Details is free-form JSON (reps, duration, focus).
type TrainingDrill struct {
	ID        uuid.UUID       `json:"id"`
	SessionID uuid.UUID       `json:"session_id"`
	Name      string          `json:"name"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// TrainingPhoto references an image taken at a session
type TrainingPhoto struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
}

// TrainingSessionSummary is a listing row with the number of players that attended
type TrainingSessionSummary struct {
	Session       TrainingSession `json:"session"`
	AttendedCount int             `json:"attended_count"`
}

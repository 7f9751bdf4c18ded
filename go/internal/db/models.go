package db

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

type Team struct {
	ID        uuid.UUID
	Name      sql.NullString
	CreatedAt sql.NullInt64
}

type Player struct {
	ID           uuid.UUID
	TeamID       uuid.NullUUID
	Name         sql.NullString
	JerseyNumber sql.NullInt32
	Position     sql.NullString
	IsInjured    sql.NullBool
	CreatedAt    sql.NullInt64
}

type Match struct {
	ID        uuid.UUID
	TeamID    uuid.NullUUID
	Opponent  sql.NullString
	PlayedAt  sql.NullInt64
	CreatedAt sql.NullInt64
}

type PlayerStat struct {
	ID            uuid.UUID
	PlayerID      uuid.UUID
	MatchID       uuid.UUID
	Goals         sql.NullInt32
	Assists       sql.NullInt32
	MinutesPlayed sql.NullInt32
}

// PlayerStatWithDate is a stats row joined with the played_at of its match.
// PlayedAt is NULL when the match row is gone.
type PlayerStatWithDate struct {
	PlayerStat
	PlayedAt sql.NullInt64
}

type TrainingSession struct {
	ID          uuid.UUID
	TeamID      uuid.NullUUID
	SessionDate sql.NullInt64
	Location    sql.NullString
	Notes       sql.NullString
	CreatedAt   sql.NullInt64
}

type TrainingSessionWithCount struct {
	TrainingSession
	AttendedCount int64
}

type TrainingAttendance struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	PlayerID  uuid.UUID
	Attended  sql.NullBool
}

type TrainingDrill struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Name      sql.NullString
	Details   pqtype.NullRawMessage
}

type TrainingPhoto struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	URL       sql.NullString
	Caption   sql.NullString
}

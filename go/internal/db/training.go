package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const createTrainingSession = `
INSERT INTO training_sessions (id, team_id, session_date, location, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, team_id, session_date, location, notes, created_at
`

type CreateTrainingSessionParams struct {
	ID          uuid.UUID
	TeamID      uuid.NullUUID
	SessionDate sql.NullInt64
	Location    sql.NullString
	Notes       sql.NullString
	CreatedAt   sql.NullInt64
}

func (q *Queries) CreateTrainingSession(ctx context.Context, arg CreateTrainingSessionParams) (TrainingSession, error) {
	row := q.queryRow(ctx, createTrainingSession,
		arg.ID,
		arg.TeamID,
		arg.SessionDate,
		arg.Location,
		arg.Notes,
		arg.CreatedAt,
	)
	var i TrainingSession
	err := row.Scan(
		&i.ID,
		&i.TeamID,
		&i.SessionDate,
		&i.Location,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, wrap("create training session", err)
}

const createTrainingAttendance = `
INSERT INTO training_attendance (id, session_id, player_id, attended)
VALUES (?, ?, ?, ?)
`

type CreateTrainingAttendanceParams struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	PlayerID  uuid.UUID
	Attended  sql.NullBool
}

func (q *Queries) CreateTrainingAttendance(ctx context.Context, arg CreateTrainingAttendanceParams) error {
	_, err := q.exec(ctx, "create training attendance", createTrainingAttendance,
		arg.ID,
		arg.SessionID,
		arg.PlayerID,
		arg.Attended,
	)
	return err
}

const createTrainingDrill = `
INSERT INTO training_drills (id, session_id, name, details)
VALUES (?, ?, ?, ?)
`

type CreateTrainingDrillParams struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Name      sql.NullString
	Details   pqtype.NullRawMessage
}

func (q *Queries) CreateTrainingDrill(ctx context.Context, arg CreateTrainingDrillParams) error {
	_, err := q.exec(ctx, "create training drill", createTrainingDrill,
		arg.ID,
		arg.SessionID,
		arg.Name,
		arg.Details,
	)
	return err
}

const createTrainingPhoto = `
INSERT INTO training_photos (id, session_id, url, caption)
VALUES (?, ?, ?, ?)
`

type CreateTrainingPhotoParams struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	URL       sql.NullString
	Caption   sql.NullString
}

func (q *Queries) CreateTrainingPhoto(ctx context.Context, arg CreateTrainingPhotoParams) error {
	_, err := q.exec(ctx, "create training photo", createTrainingPhoto,
		arg.ID,
		arg.SessionID,
		arg.URL,
		arg.Caption,
	)
	return err
}

const listTrainingSessionsByTeam = `
SELECT ts.id, ts.team_id, ts.session_date, ts.location, ts.notes, ts.created_at,
       (SELECT COUNT(*) FROM training_attendance a
        WHERE a.session_id = ts.id AND a.attended) AS attended_count
FROM training_sessions ts
WHERE ts.team_id = ?
ORDER BY COALESCE(ts.session_date, 0) DESC, ts.id
`

func (q *Queries) ListTrainingSessionsByTeam(ctx context.Context, teamID uuid.UUID) ([]TrainingSessionWithCount, error) {
	rows, err := q.query(ctx, "list training sessions", listTrainingSessionsByTeam, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TrainingSessionWithCount
	for rows.Next() {
		var i TrainingSessionWithCount
		if err := rows.Scan(
			&i.ID,
			&i.TeamID,
			&i.SessionDate,
			&i.Location,
			&i.Notes,
			&i.CreatedAt,
			&i.AttendedCount,
		); err != nil {
			return nil, wrap("scan training session", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list training sessions", err)
	}
	return items, nil
}

const listTrainingDrillsBySession = `
SELECT id, session_id, name, details FROM training_drills
WHERE session_id = ?
ORDER BY name, id
`

func (q *Queries) ListTrainingDrillsBySession(ctx context.Context, sessionID uuid.UUID) ([]TrainingDrill, error) {
	rows, err := q.query(ctx, "list training drills", listTrainingDrillsBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TrainingDrill
	for rows.Next() {
		var i TrainingDrill
		if err := rows.Scan(&i.ID, &i.SessionID, &i.Name, &i.Details); err != nil {
			return nil, wrap("scan training drill", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list training drills", err)
	}
	return items, nil
}

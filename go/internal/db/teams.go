package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createTeam = `
INSERT INTO teams (id, name, created_at)
VALUES (?, ?, ?)
RETURNING id, name, created_at
`

type CreateTeamParams struct {
	ID        uuid.UUID
	Name      sql.NullString
	CreatedAt sql.NullInt64
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.queryRow(ctx, createTeam, arg.ID, arg.Name, arg.CreatedAt)
	var i Team
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, wrap("create team", err)
}

const getTeam = `
SELECT id, name, created_at FROM teams
WHERE id = ?
`

func (q *Queries) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	row := q.queryRow(ctx, getTeam, id)
	var i Team
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, wrap("get team", err)
}

const listTeams = `
SELECT id, name, created_at FROM teams
ORDER BY created_at, id
`

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.query(ctx, "list teams", listTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		var i Team
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
			return nil, wrap("scan team", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list teams", err)
	}
	return items, nil
}

const deleteTeam = `
DELETE FROM teams WHERE id = ?
`

func (q *Queries) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	_, err := q.exec(ctx, "delete team", deleteTeam, id)
	return err
}

package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const playerColumns = `id, team_id, name, jersey_number, position, is_injured, created_at`

func scanPlayer(row interface{ Scan(...interface{}) error }) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.TeamID,
		&i.Name,
		&i.JerseyNumber,
		&i.Position,
		&i.IsInjured,
		&i.CreatedAt,
	)
	return i, err
}

const createPlayer = `
INSERT INTO players (id, team_id, name, jersey_number, position, is_injured, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + playerColumns

type CreatePlayerParams struct {
	ID           uuid.UUID
	TeamID       uuid.NullUUID
	Name         sql.NullString
	JerseyNumber sql.NullInt32
	Position     sql.NullString
	IsInjured    sql.NullBool
	CreatedAt    sql.NullInt64
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.queryRow(ctx, createPlayer,
		arg.ID,
		arg.TeamID,
		arg.Name,
		arg.JerseyNumber,
		arg.Position,
		arg.IsInjured,
		arg.CreatedAt,
	)
	i, err := scanPlayer(row)
	return i, wrap("create player", err)
}

const getPlayer = `
SELECT ` + playerColumns + ` FROM players
WHERE id = ?
`

func (q *Queries) GetPlayer(ctx context.Context, id uuid.UUID) (Player, error) {
	i, err := scanPlayer(q.queryRow(ctx, getPlayer, id))
	return i, wrap("get player", err)
}

// Insertion order is the tie-breaker callers rely on for stable jersey sorting.
const listPlayersByTeam = `
SELECT ` + playerColumns + ` FROM players
WHERE team_id = ?
ORDER BY created_at, id
`

func (q *Queries) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]Player, error) {
	rows, err := q.query(ctx, "list players by team", listPlayersByTeam, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		i, err := scanPlayer(rows)
		if err != nil {
			return nil, wrap("scan player", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list players by team", err)
	}
	return items, nil
}

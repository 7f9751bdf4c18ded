package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const matchColumns = `id, team_id, opponent, played_at, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (Match, error) {
	var i Match
	err := row.Scan(
		&i.ID,
		&i.TeamID,
		&i.Opponent,
		&i.PlayedAt,
		&i.CreatedAt,
	)
	return i, err
}

const createMatch = `
INSERT INTO matches (id, team_id, opponent, played_at, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING ` + matchColumns

type CreateMatchParams struct {
	ID        uuid.UUID
	TeamID    uuid.NullUUID
	Opponent  sql.NullString
	PlayedAt  sql.NullInt64
	CreatedAt sql.NullInt64
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.queryRow(ctx, createMatch,
		arg.ID,
		arg.TeamID,
		arg.Opponent,
		arg.PlayedAt,
		arg.CreatedAt,
	)
	i, err := scanMatch(row)
	return i, wrap("create match", err)
}

const deleteMatch = `
DELETE FROM matches WHERE id = ?
`

func (q *Queries) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	_, err := q.exec(ctx, "delete match", deleteMatch, id)
	return err
}

// Matches with no date sort as played_at = 0, i.e. last.
const listMatchesByTeamFirstPage = `
SELECT ` + matchColumns + ` FROM matches
WHERE team_id = ?
ORDER BY COALESCE(played_at, 0) DESC, id DESC
LIMIT ?
`

const listMatchesByTeamAfter = `
SELECT ` + matchColumns + ` FROM matches
WHERE team_id = ?
  AND (COALESCE(played_at, 0) < ? OR (COALESCE(played_at, 0) = ? AND id < ?))
ORDER BY COALESCE(played_at, 0) DESC, id DESC
LIMIT ?
`

// MatchCursor is the keyset position of the last row of the previous page
type MatchCursor struct {
	PlayedAt int64
	ID       uuid.UUID
}

type ListMatchesByTeamParams struct {
	TeamID uuid.UUID
	After  *MatchCursor
	Limit  int32
}

func (q *Queries) ListMatchesByTeam(ctx context.Context, arg ListMatchesByTeamParams) ([]Match, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if arg.After == nil {
		rows, err = q.query(ctx, "list matches by team", listMatchesByTeamFirstPage, arg.TeamID, arg.Limit)
	} else {
		rows, err = q.query(ctx, "list matches by team", listMatchesByTeamAfter,
			arg.TeamID,
			arg.After.PlayedAt,
			arg.After.PlayedAt,
			arg.After.ID,
			arg.Limit,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Match
	for rows.Next() {
		i, err := scanMatch(rows)
		if err != nil {
			return nil, wrap("scan match", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list matches by team", err)
	}
	return items, nil
}

package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createPlayerStat = `
INSERT INTO player_stats (id, player_id, match_id, goals, assists, minutes_played)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, player_id, match_id, goals, assists, minutes_played
`

type CreatePlayerStatParams struct {
	ID            uuid.UUID
	PlayerID      uuid.UUID
	MatchID       uuid.UUID
	Goals         sql.NullInt32
	Assists       sql.NullInt32
	MinutesPlayed sql.NullInt32
}

func (q *Queries) CreatePlayerStat(ctx context.Context, arg CreatePlayerStatParams) (PlayerStat, error) {
	row := q.queryRow(ctx, createPlayerStat,
		arg.ID,
		arg.PlayerID,
		arg.MatchID,
		arg.Goals,
		arg.Assists,
		arg.MinutesPlayed,
	)
	var i PlayerStat
	err := row.Scan(
		&i.ID,
		&i.PlayerID,
		&i.MatchID,
		&i.Goals,
		&i.Assists,
		&i.MinutesPlayed,
	)
	return i, wrap("create player stat", err)
}

// LEFT JOIN keeps rows whose match was deleted; they carry a NULL played_at.
const listStatsByPlayers = `
SELECT s.id, s.player_id, s.match_id, s.goals, s.assists, s.minutes_played, m.played_at
FROM player_stats s
LEFT JOIN matches m ON m.id = s.match_id
WHERE s.player_id IN (/*SLICE:player_ids*/?)
ORDER BY COALESCE(m.played_at, 0) DESC, s.id
`

const listStatsByPlayersSince = `
SELECT s.id, s.player_id, s.match_id, s.goals, s.assists, s.minutes_played, m.played_at
FROM player_stats s
JOIN matches m ON m.id = s.match_id
WHERE s.player_id IN (/*SLICE:player_ids*/?)
  AND m.played_at >= ?
ORDER BY m.played_at DESC, s.id
`

type ListStatsByPlayersParams struct {
	PlayerIDs []uuid.UUID
	// Since bounds the match date from below in unix milliseconds; NULL means no bound
	Since sql.NullInt64
}

func (q *Queries) ListStatsByPlayers(ctx context.Context, arg ListStatsByPlayersParams) ([]PlayerStatWithDate, error) {
	if len(arg.PlayerIDs) == 0 {
		return nil, nil
	}
	query := listStatsByPlayers
	if arg.Since.Valid {
		query = listStatsByPlayersSince
	}
	query = expandSlice(query, "player_ids", len(arg.PlayerIDs))

	args := make([]interface{}, 0, len(arg.PlayerIDs)+1)
	for _, id := range arg.PlayerIDs {
		args = append(args, id)
	}
	if arg.Since.Valid {
		args = append(args, arg.Since.Int64)
	}

	rows, err := q.query(ctx, "list stats by players", query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PlayerStatWithDate
	for rows.Next() {
		var i PlayerStatWithDate
		if err := rows.Scan(
			&i.ID,
			&i.PlayerID,
			&i.MatchID,
			&i.Goals,
			&i.Assists,
			&i.MinutesPlayed,
			&i.PlayedAt,
		); err != nil {
			return nil, wrap("scan player stat", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list stats by players", err)
	}
	return items, nil
}

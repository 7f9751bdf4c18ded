package matches

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
)

// Repository handles match persistence
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

// NewRepository creates a new match repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// PageCursor marks the last match of the previous page
type PageCursor struct {
	Date time.Time
	ID   uuid.UUID
}

// StatLine is one player's numbers for a recorded match
type StatLine struct {
	PlayerID      uuid.UUID `json:"player_id"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	MinutesPlayed int       `json:"minutes_played"`
}

// RecordMatchRequest contains a match and the stats of everyone who appeared
type RecordMatchRequest struct {
	TeamID    uuid.UUID  `json:"team_id"`
	Opponent  string     `json:"opponent"`
	Date      time.Time  `json:"date"`
	Stats     []StatLine `json:"stats"`
	CreatedAt time.Time  `json:"-"`
}

// ListMatchesPage returns up to limit matches of a team after cursor, most recent first
func (r *Repository) ListMatchesPage(ctx context.Context, teamID uuid.UUID, after *PageCursor, limit int) ([]models.Match, error) {
	params := db.ListMatchesByTeamParams{
		TeamID: teamID,
		Limit:  int32(limit),
	}
	if after != nil {
		var playedAt int64
		if !after.Date.IsZero() {
			playedAt = after.Date.UTC().UnixMilli()
		}
		params.After = &db.MatchCursor{PlayedAt: playedAt, ID: after.ID}
	}

	dbMatches, err := r.queries.ListMatchesByTeam(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]models.Match, len(dbMatches))
	for i, m := range dbMatches {
		matches[i] = dbMatchToModel(m)
	}
	return matches, nil
}

// RecordMatch inserts a match and its stat lines in a transaction
func (r *Repository) RecordMatch(ctx context.Context, req RecordMatchRequest) (*models.Match, []models.PlayerStats, error) {
	var (
		match models.Match
		stats []models.PlayerStats
	)

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(qtx *db.Queries) error {
		dbMatch, err := qtx.CreateMatch(ctx, db.CreateMatchParams{
			ID:        uuid.New(),
			TeamID:    sqlutil.ToNullUUID(&req.TeamID),
			Opponent:  sqlutil.ToSqlString(req.Opponent),
			PlayedAt:  sqlutil.ToMillis(req.Date),
			CreatedAt: sqlutil.ToMillis(req.CreatedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}
		match = dbMatchToModel(dbMatch)

		stats = make([]models.PlayerStats, 0, len(req.Stats))
		for _, line := range req.Stats {
			dbStat, err := qtx.CreatePlayerStat(ctx, db.CreatePlayerStatParams{
				ID:            uuid.New(),
				PlayerID:      line.PlayerID,
				MatchID:       match.ID,
				Goals:         sqlutil.ToSqlInt32Direct(line.Goals),
				Assists:       sqlutil.ToSqlInt32Direct(line.Assists),
				MinutesPlayed: sqlutil.ToSqlInt32Direct(line.MinutesPlayed),
			})
			if err != nil {
				return fmt.Errorf("failed to create stats for player %s: %w", line.PlayerID, err)
			}
			stats = append(stats, models.PlayerStats{
				ID:            dbStat.ID,
				PlayerID:      dbStat.PlayerID,
				MatchID:       dbStat.MatchID,
				Goals:         sqlutil.FromSqlInt32(dbStat.Goals),
				Assists:       sqlutil.FromSqlInt32(dbStat.Assists),
				MinutesPlayed: sqlutil.FromSqlInt32(dbStat.MinutesPlayed),
				MatchDate:     match.Date,
			})
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &match, stats, nil
}

func dbMatchToModel(m db.Match) models.Match {
	var teamID uuid.UUID
	if id := sqlutil.FromNullUUID(m.TeamID); id != nil {
		teamID = *id
	}
	return models.Match{
		ID:        m.ID,
		TeamID:    teamID,
		Opponent:  sqlutil.FromSqlString(m.Opponent, ""),
		Date:      sqlutil.FromMillis(m.PlayedAt),
		CreatedAt: sqlutil.FromMillis(m.CreatedAt),
	}
}

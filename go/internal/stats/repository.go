package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/player"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
)

// Querier defines what we need from the database
type Querier interface {
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Player, error)
	ListStatsByPlayers(ctx context.Context, arg db.ListStatsByPlayersParams) ([]db.PlayerStatWithDate, error)
}

// Repository reads stats rows and the rosters they belong to
type Repository struct {
	queries Querier
}

// NewRepository creates a new stats repository
func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListPlayersByTeam returns the current roster in insertion order
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	players := make([]models.Player, len(dbPlayers))
	for i, p := range dbPlayers {
		players[i] = *player.PlayerFromDB(p)
	}
	return players, nil
}

// ListStatsByPlayers returns stats rows of the given players, most recent match first.
// A non-zero since drops rows whose match is older or missing.
func (r *Repository) ListStatsByPlayers(ctx context.Context, playerIDs []uuid.UUID, since time.Time) ([]models.PlayerStats, error) {
	params := db.ListStatsByPlayersParams{PlayerIDs: playerIDs}
	if !since.IsZero() {
		params.Since = sql.NullInt64{Int64: since.UTC().UnixMilli(), Valid: true}
	}

	rows, err := r.queries.ListStatsByPlayers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}

	stats := make([]models.PlayerStats, len(rows))
	for i, row := range rows {
		stats[i] = models.PlayerStats{
			ID:            row.ID,
			PlayerID:      row.PlayerID,
			MatchID:       row.MatchID,
			Goals:         sqlutil.FromSqlInt32(row.Goals),
			Assists:       sqlutil.FromSqlInt32(row.Assists),
			MinutesPlayed: sqlutil.FromSqlInt32(row.MinutesPlayed),
			MatchDate:     sqlutil.FromMillis(row.PlayedAt),
		}
	}
	return stats, nil
}

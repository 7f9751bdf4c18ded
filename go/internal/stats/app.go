package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// DefaultBatchSize caps how many player ids go into one stats query
const DefaultBatchSize = 500

// StatsRepository defines what the app layer needs from the repository
type StatsRepository interface {
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	ListStatsByPlayers(ctx context.Context, playerIDs []uuid.UUID, since time.Time) ([]models.PlayerStats, error)
}

// App handles statistics queries and roll-ups
type App struct {
	repo      StatsRepository
	clock     clockwork.Clock
	batchSize int
}

// NewApp creates a new stats App. A non-positive batchSize falls back to DefaultBatchSize.
func NewApp(repo StatsRepository, clock clockwork.Clock, batchSize int) *App {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &App{
		repo:      repo,
		clock:     clock,
		batchSize: batchSize,
	}
}

// GetPlayerStatistics returns the player's stats inside the timeframe ending now
func (a *App) GetPlayerStatistics(ctx context.Context, playerID uuid.UUID, tf models.Timeframe) ([]models.PlayerStats, error) {
	return a.GetPlayerStatisticsAt(ctx, playerID, tf, a.clock.Now())
}

// GetPlayerStatisticsAt returns the player's stats inside the timeframe ending at now,
// most recent match first
func (a *App) GetPlayerStatisticsAt(ctx context.Context, playerID uuid.UUID, tf models.Timeframe, now time.Time) ([]models.PlayerStats, error) {
	rows, err := a.listStats(ctx, []uuid.UUID{playerID}, tf, now)
	if err != nil {
		log.Error().Err(err).Str("player_id", playerID.String()).Str("timeframe", string(tf)).Msg("failed to get player statistics")
		return nil, fmt.Errorf("failed to get player statistics: %w", err)
	}
	sortByMatchDate(rows)
	return rows, nil
}

// GetTeamStatsSummary rolls up the team's stats inside the timeframe ending now
func (a *App) GetTeamStatsSummary(ctx context.Context, teamID uuid.UUID, tf models.Timeframe) (models.TeamStatsSummary, error) {
	return a.GetTeamStatsSummaryAt(ctx, teamID, tf, a.clock.Now())
}

// GetTeamStatsSummaryAt rolls up stats of the team's current players inside the
// timeframe ending at now. PlayersCount is the roster size regardless of timeframe.
func (a *App) GetTeamStatsSummaryAt(ctx context.Context, teamID uuid.UUID, tf models.Timeframe, now time.Time) (models.TeamStatsSummary, error) {
	roster, rows, err := a.teamStats(ctx, teamID, tf, now)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Str("timeframe", string(tf)).Msg("failed to get team stats summary")
		return models.TeamStatsSummary{}, fmt.Errorf("failed to get team stats summary: %w", err)
	}
	return Summarize(rows, len(roster)), nil
}

// GetPlayerTotals returns one leaderboard entry per roster player inside the timeframe ending at now.
// A zero now means the current time.
func (a *App) GetPlayerTotals(ctx context.Context, teamID uuid.UUID, tf models.Timeframe, now time.Time) ([]models.PlayerTotals, error) {
	if now.IsZero() {
		now = a.clock.Now()
	}
	roster, rows, err := a.teamStats(ctx, teamID, tf, now)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Str("timeframe", string(tf)).Msg("failed to get player totals")
		return nil, fmt.Errorf("failed to get player totals: %w", err)
	}
	return Totals(roster, rows), nil
}

func (a *App) teamStats(ctx context.Context, teamID uuid.UUID, tf models.Timeframe, now time.Time) ([]models.Player, []models.PlayerStats, error) {
	roster, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uuid.UUID, len(roster))
	for i, p := range roster {
		ids[i] = p.ID
	}
	rows, err := a.listStats(ctx, ids, tf, now)
	if err != nil {
		return nil, nil, err
	}
	return roster, rows, nil
}

// listStats reads stats in batches of batchSize player ids and keeps the rows inside the timeframe
func (a *App) listStats(ctx context.Context, playerIDs []uuid.UUID, tf models.Timeframe, now time.Time) ([]models.PlayerStats, error) {
	since, _ := tf.Cutoff(now)

	out := []models.PlayerStats{}
	for _, batch := range sqlutil.Chunk(playerIDs, a.batchSize) {
		rows, err := a.repo.ListStatsByPlayers(ctx, batch, since)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if tf.Contains(row.MatchDate, now) {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

package matches

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/events"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/rs/zerolog/log"
)

// DefaultPageSize is how many matches are read from the store per round trip
const DefaultPageSize = 100

// MatchRepository defines what the app layer needs from the repository
type MatchRepository interface {
	ListMatchesPage(ctx context.Context, teamID uuid.UUID, after *PageCursor, limit int) ([]models.Match, error)
	RecordMatch(ctx context.Context, req RecordMatchRequest) (*models.Match, []models.PlayerStats, error)
}

// App handles match business logic
type App struct {
	repo      MatchRepository
	publisher events.Publisher
	clock     clockwork.Clock
	pageSize  int
}

// NewApp creates a new match App. A non-positive pageSize falls back to DefaultPageSize.
func NewApp(repo MatchRepository, publisher events.Publisher, clock clockwork.Clock, pageSize int) *App {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &App{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		pageSize:  pageSize,
	}
}

// FetchMatches returns the team's matches, most recent first. A positive limit
// caps the result; otherwise every match is returned. The history is read page
// by page so the whole table is never pulled in one query.
func (a *App) FetchMatches(ctx context.Context, teamID uuid.UUID, limit int) ([]models.Match, error) {
	out := []models.Match{}
	var cursor *PageCursor

	for {
		size := a.pageSize
		if limit > 0 {
			size = min(size, limit-len(out))
		}

		page, err := a.repo.ListMatchesPage(ctx, teamID, cursor, size)
		if err != nil {
			log.Error().Err(err).Str("team_id", teamID.String()).Msg("failed to fetch matches")
			return nil, fmt.Errorf("failed to fetch matches: %w", err)
		}
		out = append(out, page...)

		if len(page) < size || (limit > 0 && len(out) >= limit) {
			break
		}
		last := page[len(page)-1]
		cursor = &PageCursor{Date: last.Date, ID: last.ID}
	}

	return out, nil
}

// RecordMatch stores a match with its stat lines and announces it.
// A failed announcement is logged and does not fail the write.
func (a *App) RecordMatch(ctx context.Context, req RecordMatchRequest) (*models.Match, []models.PlayerStats, error) {
	req.Opponent = strings.TrimSpace(req.Opponent)
	if err := a.validateRecordMatchRequest(req); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}
	now := a.clock.Now()
	if req.Date.IsZero() {
		req.Date = now
	}
	req.CreatedAt = now

	match, stats, err := a.repo.RecordMatch(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("team_id", req.TeamID.String()).Msg("failed to record match")
		return nil, nil, fmt.Errorf("failed to record match: %w", err)
	}

	var totalGoals int64
	for _, s := range stats {
		totalGoals += int64(s.Goals)
	}
	event, err := events.NewMatchRecorded(events.MatchRecordedPayload{
		MatchID:     match.ID,
		TeamID:      match.TeamID,
		Date:        match.Date,
		PlayerCount: len(stats),
		TotalGoals:  totalGoals,
	}, now)
	if err == nil {
		err = a.publisher.Publish(ctx, event)
	}
	if err != nil {
		log.Error().Err(err).Str("match_id", match.ID.String()).Msg("failed to publish match recorded event")
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("team_id", match.TeamID.String()).
		Int("players", len(stats)).
		Msg("recorded match")
	return match, stats, nil
}

// validateRecordMatchRequest rejects missing ids, negative numbers and repeated players
func (a *App) validateRecordMatchRequest(req RecordMatchRequest) error {
	if req.TeamID == uuid.Nil {
		return fmt.Errorf("%w: team_id is required", models.ErrInvalidInput)
	}
	seen := make(map[uuid.UUID]struct{}, len(req.Stats))
	for _, line := range req.Stats {
		if line.PlayerID == uuid.Nil {
			return fmt.Errorf("%w: player_id is required for every stat line", models.ErrInvalidInput)
		}
		if _, dup := seen[line.PlayerID]; dup {
			return fmt.Errorf("%w: player %s appears more than once", models.ErrInvalidInput, line.PlayerID)
		}
		seen[line.PlayerID] = struct{}{}
		if line.Goals < 0 || line.Assists < 0 || line.MinutesPlayed < 0 {
			return fmt.Errorf("%w: stats for player %s must not be negative", models.ErrInvalidInput, line.PlayerID)
		}
	}
	return nil
}

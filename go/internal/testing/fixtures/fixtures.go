// Package fixtures provides test data factories.
//
// Each factory method inserts a row with sensible defaults, applies option
// functions for customization and returns the domain model.
//
// Usage:
//
//	f := fixtures.New(tdb.Queries)
//	team := f.CreateTeam(t)
//	p := f.CreatePlayer(t, team, fixtures.WithJersey(10))
//	m := f.CreateMatch(t, team, time.Now().AddDate(0, 0, -1))
//	f.CreateStat(t, p, m, fixtures.WithGoals(2))
package fixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
)

// Factory creates test entities in the database
type Factory struct {
	queries *db.Queries
	// seq keeps created_at strictly increasing so insertion order is observable
	seq  atomic.Int64
	base time.Time
}

// New creates a new fixture factory
func New(queries *db.Queries) *Factory {
	return &Factory{
		queries: queries,
		base:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *Factory) nextCreatedAt() time.Time {
	return f.base.Add(time.Duration(f.seq.Add(1)) * time.Millisecond)
}

func ctx() context.Context {
	return context.Background()
}

// ============================================================================
// Team Fixtures
// ============================================================================

// CreateTeam creates a team, named name when given
func (f *Factory) CreateTeam(t *testing.T, name ...string) models.Team {
	t.Helper()

	n := fmt.Sprintf("Team %s", uuid.NewString()[:8])
	if len(name) > 0 {
		n = name[0]
	}
	row, err := f.queries.CreateTeam(ctx(), db.CreateTeamParams{
		ID:        uuid.New(),
		Name:      sqlutil.ToSqlString(n),
		CreatedAt: sqlutil.ToMillis(f.nextCreatedAt()),
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create team: %v", err)
	}
	return models.Team{
		ID:        row.ID,
		Name:      sqlutil.FromSqlString(row.Name, ""),
		CreatedAt: sqlutil.FromMillis(row.CreatedAt),
	}
}

// ============================================================================
// Player Fixtures
// ============================================================================

// PlayerOpts customizes player creation. Nil pointers are stored as NULL.
type PlayerOpts struct {
	Name      string
	Jersey    *int
	Position  string
	IsInjured *bool
}

func WithName(name string) func(*PlayerOpts) {
	return func(o *PlayerOpts) { o.Name = name }
}

func WithJersey(n int) func(*PlayerOpts) {
	return func(o *PlayerOpts) { o.Jersey = &n }
}

func WithPosition(position string) func(*PlayerOpts) {
	return func(o *PlayerOpts) { o.Position = position }
}

func WithInjured(injured bool) func(*PlayerOpts) {
	return func(o *PlayerOpts) { o.IsInjured = &injured }
}

// CreatePlayer creates a player on team
func (f *Factory) CreatePlayer(t *testing.T, team models.Team, opts ...func(*PlayerOpts)) models.Player {
	t.Helper()

	o := &PlayerOpts{Name: fmt.Sprintf("Player %s", uuid.NewString()[:8])}
	for _, fn := range opts {
		fn(o)
	}

	row, err := f.queries.CreatePlayer(ctx(), db.CreatePlayerParams{
		ID:           uuid.New(),
		TeamID:       sqlutil.ToNullUUID(&team.ID),
		Name:         sqlutil.ToSqlString(o.Name),
		JerseyNumber: sqlutil.ToSqlInt32(o.Jersey),
		Position:     sqlutil.ToSqlString(o.Position),
		IsInjured:    sqlutil.ToSqlBool(o.IsInjured),
		CreatedAt:    sqlutil.ToMillis(f.nextCreatedAt()),
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create player: %v", err)
	}
	return models.Player{
		ID:           row.ID,
		TeamID:       team.ID,
		Name:         sqlutil.FromSqlString(row.Name, ""),
		JerseyNumber: sqlutil.FromSqlInt32(row.JerseyNumber),
		Position:     sqlutil.FromSqlString(row.Position, ""),
		IsInjured:    sqlutil.FromSqlBool(row.IsInjured),
		CreatedAt:    sqlutil.FromMillis(row.CreatedAt),
	}
}

// ============================================================================
// Match Fixtures
// ============================================================================

// CreateMatch creates a match of team played on date. A zero date is stored as NULL.
func (f *Factory) CreateMatch(t *testing.T, team models.Team, date time.Time) models.Match {
	t.Helper()

	row, err := f.queries.CreateMatch(ctx(), db.CreateMatchParams{
		ID:        uuid.New(),
		TeamID:    sqlutil.ToNullUUID(&team.ID),
		Opponent:  sqlutil.ToSqlString("Opponent " + uuid.NewString()[:4]),
		PlayedAt:  sqlutil.ToMillis(date),
		CreatedAt: sqlutil.ToMillis(f.nextCreatedAt()),
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create match: %v", err)
	}
	return models.Match{
		ID:        row.ID,
		TeamID:    team.ID,
		Opponent:  sqlutil.FromSqlString(row.Opponent, ""),
		Date:      sqlutil.FromMillis(row.PlayedAt),
		CreatedAt: sqlutil.FromMillis(row.CreatedAt),
	}
}

// ============================================================================
// Stats Fixtures
// ============================================================================

// StatOpts customizes a stat line. Nil pointers are stored as NULL.
type StatOpts struct {
	Goals   *int
	Assists *int
	Minutes *int
}

func WithGoals(n int) func(*StatOpts) {
	return func(o *StatOpts) { o.Goals = &n }
}

func WithAssists(n int) func(*StatOpts) {
	return func(o *StatOpts) { o.Assists = &n }
}

func WithMinutes(n int) func(*StatOpts) {
	return func(o *StatOpts) { o.Minutes = &n }
}

// CreateStat records player's stats for match
func (f *Factory) CreateStat(t *testing.T, player models.Player, match models.Match, opts ...func(*StatOpts)) models.PlayerStats {
	t.Helper()

	o := &StatOpts{}
	for _, fn := range opts {
		fn(o)
	}

	row, err := f.queries.CreatePlayerStat(ctx(), db.CreatePlayerStatParams{
		ID:            uuid.New(),
		PlayerID:      player.ID,
		MatchID:       match.ID,
		Goals:         sqlutil.ToSqlInt32(o.Goals),
		Assists:       sqlutil.ToSqlInt32(o.Assists),
		MinutesPlayed: sqlutil.ToSqlInt32(o.Minutes),
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create stat: %v", err)
	}
	return models.PlayerStats{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		MatchID:       row.MatchID,
		Goals:         sqlutil.FromSqlInt32(row.Goals),
		Assists:       sqlutil.FromSqlInt32(row.Assists),
		MinutesPlayed: sqlutil.FromSqlInt32(row.MinutesPlayed),
		MatchDate:     match.Date,
	}
}

package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Player, error)
}

// Repository handles all player-related database operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// CreatePlayerRequest contains all data needed to create a player
type CreatePlayerRequest struct {
	TeamID       uuid.UUID `json:"team_id"`
	Name         string    `json:"name"`
	JerseyNumber int       `json:"jersey_number"`
	Position     string    `json:"position"`
	IsInjured    *bool     `json:"is_injured,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// CreatePlayer inserts a player on a team
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	dbPlayer, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:           uuid.New(),
		TeamID:       sqlutil.ToNullUUID(&req.TeamID),
		Name:         sqlutil.ToSqlString(req.Name),
		JerseyNumber: sqlutil.ToSqlInt32Direct(req.JerseyNumber),
		Position:     sqlutil.ToSqlString(req.Position),
		IsInjured:    sqlutil.ToSqlBool(req.IsInjured),
		CreatedAt:    sqlutil.ToMillis(req.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return PlayerFromDB(dbPlayer), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return PlayerFromDB(dbPlayer), nil
}

// ListPlayersByTeam returns a team's players in insertion order
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}

	players := make([]models.Player, len(dbPlayers))
	for i, dbPlayer := range dbPlayers {
		players[i] = *PlayerFromDB(dbPlayer)
	}
	return players, nil
}

// PlayerFromDB maps nullable columns onto zero values: missing name is "",
// missing jersey is 0 and a missing injury flag counts as not injured.
func PlayerFromDB(dbPlayer db.Player) *models.Player {
	var teamID uuid.UUID
	if id := sqlutil.FromNullUUID(dbPlayer.TeamID); id != nil {
		teamID = *id
	}
	return &models.Player{
		ID:           dbPlayer.ID,
		TeamID:       teamID,
		Name:         sqlutil.FromSqlString(dbPlayer.Name, ""),
		JerseyNumber: sqlutil.FromSqlInt32(dbPlayer.JerseyNumber),
		Position:     sqlutil.FromSqlString(dbPlayer.Position, ""),
		IsInjured:    sqlutil.FromSqlBool(dbPlayer.IsInjured),
		CreatedAt:    sqlutil.FromMillis(dbPlayer.CreatedAt),
	}
}

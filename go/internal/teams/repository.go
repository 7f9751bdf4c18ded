package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTeams(ctx context.Context) ([]db.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:        uuid.New(),
		Name:      sqlutil.ToSqlString(req.Name),
		CreatedAt: sqlutil.ToMillis(req.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// ListTeams retrieves all teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *r.dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// DeleteTeam deletes a team by ID. Players, matches and their stats go with it.
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:        dbTeam.ID,
		Name:      sqlutil.FromSqlString(dbTeam.Name, ""),
		CreatedAt: sqlutil.FromMillis(dbTeam.CreatedAt),
	}
}

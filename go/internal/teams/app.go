package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/rs/zerolog/log"
)

const maxTeamNameLength = 100

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// App handles teams business logic
type App struct {
	repo  TeamsRepository
	clock clockwork.Clock
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	req.CreatedAt = a.clock.Now()

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams in creation order
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListTeams(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list teams")
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// DeleteTeam deletes a team after verifying it exists
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := a.repo.GetTeam(ctx, id); err != nil {
		return fmt.Errorf("team not found: %w", err)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team_id", id.String()).Msg("deleted team")
	return nil
}

// validateCreateTeamRequest validates create team request
func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	if len(req.Name) > maxTeamNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", models.ErrInvalidInput, maxTeamNameLength)
	}
	return nil
}

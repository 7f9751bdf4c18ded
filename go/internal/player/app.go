package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/rs/zerolog/log"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
}

// App handles player business logic
type App struct {
	repo  PlayerRepository
	clock clockwork.Clock
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Position = strings.TrimSpace(req.Position)
	if err := a.validateCreatePlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	req.CreatedAt = a.clock.Now()

	player, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// FetchActivePlayers returns the team's players that are not flagged injured,
// ordered by jersey number. An empty roster is not an error.
func (a *App) FetchActivePlayers(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Msg("failed to fetch active players")
		return nil, fmt.Errorf("failed to fetch active players: %w", err)
	}

	return filterPlayers(players, func(p models.Player) bool {
		return !p.IsInjured && p.TeamID == teamID
	}), nil
}

// SearchPlayers returns the team's players whose name or position contains the
// search text (ignoring case and accents) or whose jersey equals it as a number.
// Empty text returns the whole roster. Results are ordered by jersey number.
func (a *App) SearchPlayers(ctx context.Context, teamID uuid.UUID, searchText string) ([]models.Player, error) {
	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Msg("failed to search players")
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	q := parseSearch(searchText)
	return filterPlayers(players, func(p models.Player) bool {
		return p.TeamID == teamID && q.matches(p)
	}), nil
}

// validateCreatePlayerRequest validates create player request
func (a *App) validateCreatePlayerRequest(req CreatePlayerRequest) error {
	if req.TeamID == uuid.Nil {
		return fmt.Errorf("%w: team_id is required", models.ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	if req.JerseyNumber < 0 {
		return fmt.Errorf("%w: jersey_number must not be negative", models.ErrInvalidInput)
	}
	return nil
}

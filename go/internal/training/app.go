package training

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TrainingRepository defines what the app layer needs from the repository
type TrainingRepository interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*models.TrainingSession, error)
	ListSessions(ctx context.Context, teamID uuid.UUID) ([]models.TrainingSessionSummary, error)
	ListDrills(ctx context.Context, sessionID uuid.UUID) ([]models.TrainingDrill, error)
}

// App handles training session business logic
type App struct {
	repo  TrainingRepository
	clock clockwork.Clock
}

// NewApp creates a new training App
func NewApp(repo TrainingRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreateSession records a training session. A zero date means today.
func (a *App) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.TrainingSession, error) {
	req.Location = strings.TrimSpace(req.Location)
	for i := range req.Drills {
		req.Drills[i].Name = strings.TrimSpace(req.Drills[i].Name)
	}
	if err := a.validateCreateSessionRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	now := a.clock.Now()
	if req.Date.IsZero() {
		req.Date = now
	}
	req.CreatedAt = now

	session, err := a.repo.CreateSession(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("team_id", req.TeamID.String()).Msg("failed to create training session")
		return nil, fmt.Errorf("failed to create training session: %w", err)
	}

	log.Info().
		Str("session_id", session.ID.String()).
		Str("team_id", session.TeamID.String()).
		Int("drills", len(session.Drills)).
		Msg("created training session")
	return session, nil
}

// ListSessions returns the team's sessions, most recent first
func (a *App) ListSessions(ctx context.Context, teamID uuid.UUID) ([]models.TrainingSessionSummary, error) {
	sessions, err := a.repo.ListSessions(ctx, teamID)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Msg("failed to list training sessions")
		return nil, fmt.Errorf("failed to list training sessions: %w", err)
	}
	return sessions, nil
}

// ListDrills returns the drills of a session ordered by name
func (a *App) ListDrills(ctx context.Context, sessionID uuid.UUID) ([]models.TrainingDrill, error) {
	drills, err := a.repo.ListDrills(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drills: %w", err)
	}
	return drills, nil
}

func (a *App) validateCreateSessionRequest(req CreateSessionRequest) error {
	if req.TeamID == uuid.Nil {
		return fmt.Errorf("%w: team_id is required", models.ErrInvalidInput)
	}
	seen := make(map[uuid.UUID]struct{}, len(req.Attendance))
	for _, line := range req.Attendance {
		if line.PlayerID == uuid.Nil {
			return fmt.Errorf("%w: player_id is required for attendance", models.ErrInvalidInput)
		}
		if _, dup := seen[line.PlayerID]; dup {
			return fmt.Errorf("%w: attendance for player %s given twice", models.ErrInvalidInput, line.PlayerID)
		}
		seen[line.PlayerID] = struct{}{}
	}
	for _, d := range req.Drills {
		if d.Name == "" {
			return fmt.Errorf("%w: drill name is required", models.ErrInvalidInput)
		}
		if len(d.Details) > 0 && !json.Valid(d.Details) {
			return fmt.Errorf("%w: details of drill %q are not valid JSON", models.ErrInvalidInput, d.Name)
		}
	}
	for _, p := range req.Photos {
		if strings.TrimSpace(p.URL) == "" {
			return fmt.Errorf("%w: photo url is required", models.ErrInvalidInput)
		}
	}
	return nil
}

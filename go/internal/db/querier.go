package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error)
	CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error)
	CreatePlayerStat(ctx context.Context, arg CreatePlayerStatParams) (PlayerStat, error)
	CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error)
	CreateTrainingAttendance(ctx context.Context, arg CreateTrainingAttendanceParams) error
	CreateTrainingDrill(ctx context.Context, arg CreateTrainingDrillParams) error
	CreateTrainingPhoto(ctx context.Context, arg CreateTrainingPhotoParams) error
	CreateTrainingSession(ctx context.Context, arg CreateTrainingSessionParams) (TrainingSession, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	GetPlayer(ctx context.Context, id uuid.UUID) (Player, error)
	GetTeam(ctx context.Context, id uuid.UUID) (Team, error)
	ListMatchesByTeam(ctx context.Context, arg ListMatchesByTeamParams) ([]Match, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]Player, error)
	ListStatsByPlayers(ctx context.Context, arg ListStatsByPlayersParams) ([]PlayerStatWithDate, error)
	ListTeams(ctx context.Context) ([]Team, error)
	ListTrainingDrillsBySession(ctx context.Context, sessionID uuid.UUID) ([]TrainingDrill, error)
	ListTrainingSessionsByTeam(ctx context.Context, teamID uuid.UUID) ([]TrainingSessionWithCount, error)
}

var _ Querier = (*Queries)(nil)

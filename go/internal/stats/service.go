package stats

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/matches"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/player"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
)

// StatsApp defines what the service layer needs from the stats application
type StatsApp interface {
	GetPlayerStatistics(ctx context.Context, playerID uuid.UUID, tf models.Timeframe) ([]models.PlayerStats, error)
	GetPlayerStatisticsAt(ctx context.Context, playerID uuid.UUID, tf models.Timeframe, now time.Time) ([]models.PlayerStats, error)
	GetTeamStatsSummary(ctx context.Context, teamID uuid.UUID, tf models.Timeframe) (models.TeamStatsSummary, error)
	GetTeamStatsSummaryAt(ctx context.Context, teamID uuid.UUID, tf models.Timeframe, now time.Time) (models.TeamStatsSummary, error)
	GetPlayerTotals(ctx context.Context, teamID uuid.UUID, tf models.Timeframe, now time.Time) ([]models.PlayerTotals, error)
}

// Service implements the roster.v1.StatsService connect interface
type Service struct {
	app StatsApp
}

// NewService creates a new stats service
func NewService(app StatsApp) *Service {
	return &Service{
		app: app,
	}
}

// NewHandler mounts the service procedures and returns the path prefix to register
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpc.HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(rosterv1.StatsServiceGetPlayerStatisticsProcedure, connect.NewUnaryHandler(rosterv1.StatsServiceGetPlayerStatisticsProcedure, svc.GetPlayerStatistics, opts...))
	mux.Handle(rosterv1.StatsServiceGetTeamStatsSummaryProcedure, connect.NewUnaryHandler(rosterv1.StatsServiceGetTeamStatsSummaryProcedure, svc.GetTeamStatsSummary, opts...))
	mux.Handle(rosterv1.StatsServiceGetLeaderboardProcedure, connect.NewUnaryHandler(rosterv1.StatsServiceGetLeaderboardProcedure, svc.GetLeaderboard, opts...))
	return "/" + rosterv1.StatsServiceName + "/", mux
}

// GetPlayerStatistics lists a player's stats rows inside a timeframe
func (s *Service) GetPlayerStatistics(ctx context.Context, req *connect.Request[rosterv1.GetPlayerStatisticsRequest]) (*connect.Response[rosterv1.GetPlayerStatisticsResponse], error) {
	playerID, err := rpc.ParseID("player_id", req.Msg.PlayerId)
	if err != nil {
		return nil, err
	}
	tf, err := models.ParseTimeframe(req.Msg.Timeframe)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	var stats []models.PlayerStats
	if req.Msg.ReferenceTime.IsZero() {
		stats, err = s.app.GetPlayerStatistics(ctx, playerID, tf)
	} else {
		stats, err = s.app.GetPlayerStatisticsAt(ctx, playerID, tf, req.Msg.ReferenceTime)
	}
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.GetPlayerStatisticsResponse{
		Stats: matches.StatsToProto(stats),
	}), nil
}

// GetTeamStatsSummary rolls up a team's stats inside a timeframe
func (s *Service) GetTeamStatsSummary(ctx context.Context, req *connect.Request[rosterv1.GetTeamStatsSummaryRequest]) (*connect.Response[rosterv1.GetTeamStatsSummaryResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}
	tf, err := models.ParseTimeframe(req.Msg.Timeframe)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	var summary models.TeamStatsSummary
	if req.Msg.ReferenceTime.IsZero() {
		summary, err = s.app.GetTeamStatsSummary(ctx, teamID, tf)
	} else {
		summary, err = s.app.GetTeamStatsSummaryAt(ctx, teamID, tf, req.Msg.ReferenceTime)
	}
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.GetTeamStatsSummaryResponse{
		Summary: SummaryToProto(summary),
	}), nil
}

// GetLeaderboard returns per-player totals, top scorers first
func (s *Service) GetLeaderboard(ctx context.Context, req *connect.Request[rosterv1.GetLeaderboardRequest]) (*connect.Response[rosterv1.GetLeaderboardResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}
	tf, err := models.ParseTimeframe(req.Msg.Timeframe)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	totals, err := s.app.GetPlayerTotals(ctx, teamID, tf, req.Msg.ReferenceTime)
	if err != nil {
		return nil, rpc.Error(err)
	}

	entries := make([]*rosterv1.LeaderboardEntry, len(totals))
	for i := range totals {
		t := &totals[i]
		entries[i] = &rosterv1.LeaderboardEntry{
			Player:        player.PlayerToProto(&t.Player),
			Goals:         t.Goals,
			Assists:       t.Assists,
			MinutesPlayed: t.MinutesPlayed,
			Appearances:   int32(t.Appearances),
		}
	}
	return connect.NewResponse(&rosterv1.GetLeaderboardResponse{
		Entries: entries,
	}), nil
}

// SummaryToProto converts a team summary to its wire message
func SummaryToProto(s models.TeamStatsSummary) *rosterv1.TeamStatsSummary {
	return &rosterv1.TeamStatsSummary{
		TotalGoals:    s.TotalGoals,
		TotalAssists:  s.TotalAssists,
		TotalMinutes:  s.TotalMinutes,
		MatchesPlayed: int32(s.MatchesPlayed),
		PlayersCount:  int32(s.PlayersCount),
	}
}

package matches

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
)

// MatchApp defines what the service layer needs from the match application
type MatchApp interface {
	FetchMatches(ctx context.Context, teamID uuid.UUID, limit int) ([]models.Match, error)
	RecordMatch(ctx context.Context, req RecordMatchRequest) (*models.Match, []models.PlayerStats, error)
}

// Service implements the roster.v1.MatchService connect interface
type Service struct {
	app MatchApp
}

// NewService creates a new match service
func NewService(app MatchApp) *Service {
	return &Service{
		app: app,
	}
}

// NewHandler mounts the service procedures and returns the path prefix to register
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpc.HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(rosterv1.MatchServiceFetchMatchesProcedure, connect.NewUnaryHandler(rosterv1.MatchServiceFetchMatchesProcedure, svc.FetchMatches, opts...))
	mux.Handle(rosterv1.MatchServiceRecordMatchProcedure, connect.NewUnaryHandler(rosterv1.MatchServiceRecordMatchProcedure, svc.RecordMatch, opts...))
	return "/" + rosterv1.MatchServiceName + "/", mux
}

// FetchMatches lists a team's matches, most recent first
func (s *Service) FetchMatches(ctx context.Context, req *connect.Request[rosterv1.FetchMatchesRequest]) (*connect.Response[rosterv1.FetchMatchesResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	matches, err := s.app.FetchMatches(ctx, teamID, int(req.Msg.Limit))
	if err != nil {
		return nil, rpc.Error(err)
	}

	out := make([]*rosterv1.Match, len(matches))
	for i := range matches {
		out[i] = MatchToProto(&matches[i])
	}
	return connect.NewResponse(&rosterv1.FetchMatchesResponse{
		Matches: out,
	}), nil
}

// RecordMatch stores a match and the stats of the players who appeared
func (s *Service) RecordMatch(ctx context.Context, req *connect.Request[rosterv1.RecordMatchRequest]) (*connect.Response[rosterv1.RecordMatchResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	lines := make([]StatLine, 0, len(req.Msg.Stats))
	for _, st := range req.Msg.Stats {
		if st == nil {
			continue
		}
		playerID, err := rpc.ParseID("player_id", st.PlayerId)
		if err != nil {
			return nil, err
		}
		lines = append(lines, StatLine{
			PlayerID:      playerID,
			Goals:         int(st.Goals),
			Assists:       int(st.Assists),
			MinutesPlayed: int(st.MinutesPlayed),
		})
	}

	match, stats, err := s.app.RecordMatch(ctx, RecordMatchRequest{
		TeamID:   teamID,
		Opponent: req.Msg.Opponent,
		Date:     req.Msg.Date,
		Stats:    lines,
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.RecordMatchResponse{
		Match: MatchToProto(match),
		Stats: StatsToProto(stats),
	}), nil
}

// MatchToProto converts a domain match to its wire message
func MatchToProto(m *models.Match) *rosterv1.Match {
	if m == nil {
		return nil
	}
	return &rosterv1.Match{
		Id:       m.ID.String(),
		TeamId:   m.TeamID.String(),
		Opponent: m.Opponent,
		Date:     m.Date,
	}
}

// StatsToProto converts stats rows to wire messages
func StatsToProto(stats []models.PlayerStats) []*rosterv1.PlayerStats {
	out := make([]*rosterv1.PlayerStats, len(stats))
	for i, s := range stats {
		out[i] = &rosterv1.PlayerStats{
			Id:            s.ID.String(),
			PlayerId:      s.PlayerID.String(),
			MatchId:       s.MatchID.String(),
			Goals:         int32(s.Goals),
			Assists:       int32(s.Assists),
			MinutesPlayed: int32(s.MinutesPlayed),
			MatchDate:     s.MatchDate,
		}
	}
	return out
}

package teams

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Service implements the roster.v1.TeamService connect interface
type Service struct {
	app TeamsApp
}

// NewService creates a new teams service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// NewHandler mounts the service procedures and returns the path prefix to register
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpc.HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(rosterv1.TeamServiceCreateTeamProcedure, connect.NewUnaryHandler(rosterv1.TeamServiceCreateTeamProcedure, svc.CreateTeam, opts...))
	mux.Handle(rosterv1.TeamServiceGetTeamProcedure, connect.NewUnaryHandler(rosterv1.TeamServiceGetTeamProcedure, svc.GetTeam, opts...))
	mux.Handle(rosterv1.TeamServiceListTeamsProcedure, connect.NewUnaryHandler(rosterv1.TeamServiceListTeamsProcedure, svc.ListTeams, opts...))
	mux.Handle(rosterv1.TeamServiceDeleteTeamProcedure, connect.NewUnaryHandler(rosterv1.TeamServiceDeleteTeamProcedure, svc.DeleteTeam, opts...))
	return "/" + rosterv1.TeamServiceName + "/", mux
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[rosterv1.CreateTeamRequest]) (*connect.Response[rosterv1.CreateTeamResponse], error) {
	team, err := s.app.CreateTeam(ctx, CreateTeamRequest{Name: req.Msg.Name})
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.CreateTeamResponse{
		Team: TeamToProto(team),
	}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[rosterv1.GetTeamRequest]) (*connect.Response[rosterv1.GetTeamResponse], error) {
	id, err := rpc.ParseID("id", req.Msg.Id)
	if err != nil {
		return nil, err
	}

	team, err := s.app.GetTeam(ctx, id)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.GetTeamResponse{
		Team: TeamToProto(team),
	}), nil
}

// ListTeams lists every team
func (s *Service) ListTeams(ctx context.Context, req *connect.Request[rosterv1.ListTeamsRequest]) (*connect.Response[rosterv1.ListTeamsResponse], error) {
	teams, err := s.app.ListTeams(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	out := make([]*rosterv1.Team, len(teams))
	for i := range teams {
		out[i] = TeamToProto(&teams[i])
	}

	return connect.NewResponse(&rosterv1.ListTeamsResponse{
		Teams: out,
	}), nil
}

// DeleteTeam deletes a team and everything it owns
func (s *Service) DeleteTeam(ctx context.Context, req *connect.Request[rosterv1.DeleteTeamRequest]) (*connect.Response[rosterv1.DeleteTeamResponse], error) {
	id, err := rpc.ParseID("id", req.Msg.Id)
	if err != nil {
		return nil, err
	}

	if err := s.app.DeleteTeam(ctx, id); err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.DeleteTeamResponse{}), nil
}

// TeamToProto converts a domain team to its wire message
func TeamToProto(team *models.Team) *rosterv1.Team {
	if team == nil {
		return nil
	}
	return &rosterv1.Team{
		Id:        team.ID.String(),
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
	}
}

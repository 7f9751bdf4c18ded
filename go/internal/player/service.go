package player

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	FetchActivePlayers(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	SearchPlayers(ctx context.Context, teamID uuid.UUID, searchText string) ([]models.Player, error)
}

// Service implements the roster.v1.PlayerService connect interface
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// NewHandler mounts the service procedures and returns the path prefix to register
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpc.HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(rosterv1.PlayerServiceCreatePlayerProcedure, connect.NewUnaryHandler(rosterv1.PlayerServiceCreatePlayerProcedure, svc.CreatePlayer, opts...))
	mux.Handle(rosterv1.PlayerServiceGetPlayerProcedure, connect.NewUnaryHandler(rosterv1.PlayerServiceGetPlayerProcedure, svc.GetPlayer, opts...))
	mux.Handle(rosterv1.PlayerServiceFetchActivePlayersProcedure, connect.NewUnaryHandler(rosterv1.PlayerServiceFetchActivePlayersProcedure, svc.FetchActivePlayers, opts...))
	mux.Handle(rosterv1.PlayerServiceSearchPlayersProcedure, connect.NewUnaryHandler(rosterv1.PlayerServiceSearchPlayersProcedure, svc.SearchPlayers, opts...))
	return "/" + rosterv1.PlayerServiceName + "/", mux
}

// CreatePlayer adds a player to a team
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[rosterv1.CreatePlayerRequest]) (*connect.Response[rosterv1.CreatePlayerResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	player, err := s.app.CreatePlayer(ctx, CreatePlayerRequest{
		TeamID:       teamID,
		Name:         req.Msg.Name,
		JerseyNumber: int(req.Msg.JerseyNumber),
		Position:     req.Msg.Position,
		IsInjured:    req.Msg.IsInjured,
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.CreatePlayerResponse{
		Player: PlayerToProto(player),
	}), nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[rosterv1.GetPlayerRequest]) (*connect.Response[rosterv1.GetPlayerResponse], error) {
	id, err := rpc.ParseID("id", req.Msg.Id)
	if err != nil {
		return nil, err
	}

	player, err := s.app.GetPlayer(ctx, id)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.GetPlayerResponse{
		Player: PlayerToProto(player),
	}), nil
}

// FetchActivePlayers lists the uninjured players of a team by jersey number
func (s *Service) FetchActivePlayers(ctx context.Context, req *connect.Request[rosterv1.FetchActivePlayersRequest]) (*connect.Response[rosterv1.FetchActivePlayersResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	players, err := s.app.FetchActivePlayers(ctx, teamID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.FetchActivePlayersResponse{
		Players: PlayersToProto(players),
	}), nil
}

// SearchPlayers searches a team's roster by name, position or jersey number
func (s *Service) SearchPlayers(ctx context.Context, req *connect.Request[rosterv1.SearchPlayersRequest]) (*connect.Response[rosterv1.SearchPlayersResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	players, err := s.app.SearchPlayers(ctx, teamID, req.Msg.SearchText)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rosterv1.SearchPlayersResponse{
		Players: PlayersToProto(players),
	}), nil
}

// PlayerToProto converts a domain player to its wire message
func PlayerToProto(p *models.Player) *rosterv1.Player {
	if p == nil {
		return nil
	}
	return &rosterv1.Player{
		Id:           p.ID.String(),
		TeamId:       p.TeamID.String(),
		Name:         p.Name,
		JerseyNumber: int32(p.JerseyNumber),
		Position:     p.Position,
		IsInjured:    p.IsInjured,
	}
}

// PlayersToProto converts a slice of players, never returning nil
func PlayersToProto(players []models.Player) []*rosterv1.Player {
	out := make([]*rosterv1.Player, len(players))
	for i := range players {
		out[i] = PlayerToProto(&players[i])
	}
	return out
}

package training

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
)

// TrainingApp defines what the service layer needs from the training application
type TrainingApp interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*models.TrainingSession, error)
	ListSessions(ctx context.Context, teamID uuid.UUID) ([]models.TrainingSessionSummary, error)
}

// Service implements the roster.v1.TrainingService connect interface
type Service struct {
	app TrainingApp
}

// NewService creates a new training service
func NewService(app TrainingApp) *Service {
	return &Service{
		app: app,
	}
}

// NewHandler mounts the service procedures and returns the path prefix to register
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpc.HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(rosterv1.TrainingServiceCreateSessionProcedure, connect.NewUnaryHandler(rosterv1.TrainingServiceCreateSessionProcedure, svc.CreateSession, opts...))
	mux.Handle(rosterv1.TrainingServiceListSessionsProcedure, connect.NewUnaryHandler(rosterv1.TrainingServiceListSessionsProcedure, svc.ListSessions, opts...))
	return "/" + rosterv1.TrainingServiceName + "/", mux
}

// CreateSession records a training session
func (s *Service) CreateSession(ctx context.Context, req *connect.Request[rosterv1.CreateSessionRequest]) (*connect.Response[rosterv1.CreateSessionResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	create := CreateSessionRequest{
		TeamID:   teamID,
		Date:     req.Msg.Date,
		Location: req.Msg.Location,
		Notes:    req.Msg.Notes,
	}
	for _, a := range req.Msg.Attendance {
		if a == nil {
			continue
		}
		playerID, err := rpc.ParseID("player_id", a.PlayerId)
		if err != nil {
			return nil, err
		}
		create.Attendance = append(create.Attendance, AttendanceLine{PlayerID: playerID, Attended: a.Attended})
	}
	for _, d := range req.Msg.Drills {
		if d != nil {
			create.Drills = append(create.Drills, DrillLine{Name: d.Name, Details: d.Details})
		}
	}
	for _, p := range req.Msg.Photos {
		if p != nil {
			create.Photos = append(create.Photos, PhotoLine{URL: p.Url, Caption: p.Caption})
		}
	}

	session, err := s.app.CreateSession(ctx, create)
	if err != nil {
		return nil, rpc.Error(err)
	}

	attended := 0
	for _, a := range session.Attendance {
		if a.Attended {
			attended++
		}
	}
	return connect.NewResponse(&rosterv1.CreateSessionResponse{
		Session: SessionToProto(session, attended),
	}), nil
}

// ListSessions lists a team's training sessions, most recent first
func (s *Service) ListSessions(ctx context.Context, req *connect.Request[rosterv1.ListSessionsRequest]) (*connect.Response[rosterv1.ListSessionsResponse], error) {
	teamID, err := rpc.ParseID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, err
	}

	sessions, err := s.app.ListSessions(ctx, teamID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	out := make([]*rosterv1.TrainingSession, len(sessions))
	for i := range sessions {
		out[i] = SessionToProto(&sessions[i].Session, sessions[i].AttendedCount)
	}
	return connect.NewResponse(&rosterv1.ListSessionsResponse{
		Sessions: out,
	}), nil
}

// SessionToProto converts a session to its wire message
func SessionToProto(s *models.TrainingSession, attended int) *rosterv1.TrainingSession {
	return &rosterv1.TrainingSession{
		Id:            s.ID.String(),
		TeamId:        s.TeamID.String(),
		Date:          s.Date,
		Location:      s.Location,
		Notes:         s.Notes,
		AttendedCount: int32(attended),
	}
}

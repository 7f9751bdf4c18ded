package training

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/mcdev12/rosterbook/go/internal/sqlutil"
	"github.com/sqlc-dev/pqtype"
)

// Repository handles training session persistence
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

// NewRepository creates a new training repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// AttendanceLine marks whether one player attended
type AttendanceLine struct {
	PlayerID uuid.UUID `json:"player_id"`
	Attended bool      `json:"attended"`
}

// DrillLine is one drill run during the session
type DrillLine struct {
	Name    string          `json:"name"`
	Details json.RawMessage `json:"details,omitempty"`
}

// PhotoLine references an image taken at the session
type PhotoLine struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// CreateSessionRequest contains a session and everything recorded with it
type CreateSessionRequest struct {
	TeamID     uuid.UUID        `json:"team_id"`
	Date       time.Time        `json:"date"`
	Location   string           `json:"location"`
	Notes      string           `json:"notes"`
	Attendance []AttendanceLine `json:"attendance"`
	Drills     []DrillLine      `json:"drills"`
	Photos     []PhotoLine      `json:"photos"`
	CreatedAt  time.Time        `json:"-"`
}

// CreateSession writes the session with its attendance, drills and photos in one transaction
func (r *Repository) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.TrainingSession, error) {
	var session models.TrainingSession

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(qtx *db.Queries) error {
		dbSession, err := qtx.CreateTrainingSession(ctx, db.CreateTrainingSessionParams{
			ID:          uuid.New(),
			TeamID:      sqlutil.ToNullUUID(&req.TeamID),
			SessionDate: sqlutil.ToMillis(req.Date),
			Location:    sqlutil.ToSqlString(req.Location),
			Notes:       sqlutil.ToSqlString(req.Notes),
			CreatedAt:   sqlutil.ToMillis(req.CreatedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create training session: %w", err)
		}
		session = dbSessionToModel(dbSession)

		for _, a := range req.Attendance {
			row := models.TrainingAttendance{
				ID:        uuid.New(),
				SessionID: session.ID,
				PlayerID:  a.PlayerID,
				Attended:  a.Attended,
			}
			if err := qtx.CreateTrainingAttendance(ctx, db.CreateTrainingAttendanceParams{
				ID:        row.ID,
				SessionID: row.SessionID,
				PlayerID:  row.PlayerID,
				Attended:  sqlutil.ToSqlBool(&a.Attended),
			}); err != nil {
				return fmt.Errorf("failed to record attendance for player %s: %w", a.PlayerID, err)
			}
			session.Attendance = append(session.Attendance, row)
		}

		for _, d := range req.Drills {
			row := models.TrainingDrill{
				ID:        uuid.New(),
				SessionID: session.ID,
				Name:      d.Name,
				Details:   d.Details,
			}
			if err := qtx.CreateTrainingDrill(ctx, db.CreateTrainingDrillParams{
				ID:        row.ID,
				SessionID: row.SessionID,
				Name:      sqlutil.ToSqlString(d.Name),
				Details:   pqtype.NullRawMessage{RawMessage: d.Details, Valid: len(d.Details) > 0},
			}); err != nil {
				return fmt.Errorf("failed to create drill %q: %w", d.Name, err)
			}
			session.Drills = append(session.Drills, row)
		}

		for _, p := range req.Photos {
			row := models.TrainingPhoto{
				ID:        uuid.New(),
				SessionID: session.ID,
				URL:       p.URL,
				Caption:   p.Caption,
			}
			if err := qtx.CreateTrainingPhoto(ctx, db.CreateTrainingPhotoParams{
				ID:        row.ID,
				SessionID: row.SessionID,
				URL:       sqlutil.ToSqlString(p.URL),
				Caption:   sqlutil.ToSqlString(p.Caption),
			}); err != nil {
				return fmt.Errorf("failed to create photo: %w", err)
			}
			session.Photos = append(session.Photos, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns the team's sessions, most recent first, with attendance counts
func (r *Repository) ListSessions(ctx context.Context, teamID uuid.UUID) ([]models.TrainingSessionSummary, error) {
	rows, err := r.queries.ListTrainingSessionsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training sessions: %w", err)
	}
	out := make([]models.TrainingSessionSummary, len(rows))
	for i, row := range rows {
		out[i] = models.TrainingSessionSummary{
			Session:       dbSessionToModel(row.TrainingSession),
			AttendedCount: int(row.AttendedCount),
		}
	}
	return out, nil
}

// ListDrills returns the drills of a session
func (r *Repository) ListDrills(ctx context.Context, sessionID uuid.UUID) ([]models.TrainingDrill, error) {
	rows, err := r.queries.ListTrainingDrillsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drills: %w", err)
	}
	out := make([]models.TrainingDrill, len(rows))
	for i, row := range rows {
		out[i] = models.TrainingDrill{
			ID:        row.ID,
			SessionID: row.SessionID,
			Name:      sqlutil.FromSqlString(row.Name, ""),
		}
		if row.Details.Valid {
			out[i].Details = row.Details.RawMessage
		}
	}
	return out, nil
}

func dbSessionToModel(s db.TrainingSession) models.TrainingSession {
	var teamID uuid.UUID
	if id := sqlutil.FromNullUUID(s.TeamID); id != nil {
		teamID = *id
	}
	return models.TrainingSession{
		ID:        s.ID,
		TeamID:    teamID,
		Date:      sqlutil.FromMillis(s.SessionDate),
		Location:  sqlutil.FromSqlString(s.Location, ""),
		Notes:     sqlutil.FromSqlString(s.Notes, ""),
		CreatedAt: sqlutil.FromMillis(s.CreatedAt),
	}
}

package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/events"
	"github.com/mcdev12/rosterbook/go/internal/matches"
	"github.com/mcdev12/rosterbook/go/internal/player"
	"github.com/mcdev12/rosterbook/go/internal/stats"
	"github.com/mcdev12/rosterbook/go/internal/teams"
	"github.com/mcdev12/rosterbook/go/internal/training"
)

type Services struct {
	Teams    *teams.Service
	Players  *player.Service
	Matches  *matches.Service
	Stats    *stats.Service
	Training *training.Service
}

func setupServices(database *sql.DB, dialect db.Dialect, publisher events.Publisher, clock clockwork.Clock, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	queries := db.New(database, dialect)

	// Teams
	teamsRepo := teams.NewRepository(queries)
	teamsApp := teams.NewApp(teamsRepo, clock)
	teamsService := teams.NewService(teamsApp)

	// Players
	playerRepo := player.NewRepository(queries)
	playerApp := player.NewApp(playerRepo, clock)
	playerService := player.NewService(playerApp)

	// Matches
	matchRepo := matches.NewRepository(queries, database)
	matchApp := matches.NewApp(matchRepo, publisher, clock, config.Query.MatchPageSize)
	matchService := matches.NewService(matchApp)

	// Stats
	statsRepo := stats.NewRepository(queries)
	statsApp := stats.NewApp(statsRepo, clock, config.Query.StatsBatchSize)
	statsService := stats.NewService(statsApp)

	// Training
	trainingRepo := training.NewRepository(queries, database)
	trainingApp := training.NewApp(trainingRepo, clock)
	trainingService := training.NewService(trainingApp)

	return &Services{
		Teams:    teamsService,
		Players:  playerService,
		Matches:  matchService,
		Stats:    statsService,
		Training: trainingService,
	}
}

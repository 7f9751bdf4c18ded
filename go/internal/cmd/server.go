package main

import (
	"fmt"
	"net/http"

	"github.com/mcdev12/rosterbook/go/internal/matches"
	"github.com/mcdev12/rosterbook/go/internal/player"
	"github.com/mcdev12/rosterbook/go/internal/stats"
	"github.com/mcdev12/rosterbook/go/internal/teams"
	"github.com/mcdev12/rosterbook/go/internal/training"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services, config *Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Server.Port),
		Handler: newHandler(services, config.Server.AllowedOrigins),
	}
}

func newHandler(services *Services, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: allowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	// Register services
	registerServices(mux, services)

	// Add health check endpoint
	setupHealthCheck(mux)

	// Wrap with CORS and serve HTTP/2 without TLS
	return h2c.NewHandler(c.Handler(mux), &http2.Server{})
}

func registerServices(mux *http.ServeMux, services *Services) {
	// Register team service
	mux.Handle(teams.NewHandler(services.Teams))

	// Register player service
	mux.Handle(player.NewHandler(services.Players))

	// Register match service
	mux.Handle(matches.NewHandler(services.Matches))

	// Register stats service
	mux.Handle(stats.NewHandler(services.Stats))

	// Register training service
	mux.Handle(training.NewHandler(services.Training))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

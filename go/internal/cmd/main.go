package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	config, err := loadConfig(getEnv("ROSTER_CONFIG", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, dialect, err := setupDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup database")
	}
	defer database.Close()

	publisher, closePublisher := setupPublisher(ctx)
	defer closePublisher()

	services := setupServices(database, dialect, publisher, clockwork.NewRealClock(), config)
	server := setupServer(services, config)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("roster server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("roster server shutdown complete")
}

// setupPublisher connects to JetStream when NATS_URL is set; otherwise events are dropped
func setupPublisher(ctx context.Context) (events.Publisher, func()) {
	natsURL := getEnv("NATS_URL", "")
	if natsURL == "" {
		log.Info().Msg("NATS_URL not set, match events will not be published")
		return events.NopPublisher{}, func() {}
	}

	cfg := events.DefaultJetStreamConfig()
	cfg.URL = natsURL
	publisher, err := events.NewJetStreamPublisher(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("nats_url", natsURL).Msg("failed to create event publisher")
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}
}

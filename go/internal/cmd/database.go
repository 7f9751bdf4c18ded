package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/dbconfig"
	"github.com/rs/zerolog/log"
)

func setupDatabase(ctx context.Context) (*sql.DB, db.Dialect, error) {
	dbCfg := dbconfig.NewConfigFromEnv()

	database, err := dbCfg.Open(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if dbCfg.Driver == db.DialectSQLite {
		log.Info().Str("driver", string(dbCfg.Driver)).Str("path", dbCfg.Path).Msg("connected to database")
	} else {
		log.Info().
			Str("driver", string(dbCfg.Driver)).
			Str("user", dbCfg.User).
			Str("host", dbCfg.Host).
			Int("port", dbCfg.Port).
			Str("database", dbCfg.Database).
			Msg("connected to database")
	}
	return database, dbCfg.Driver, nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the store, verifies the connection and brings the schema up to date.
// SQLite is limited to one open connection because the store has a single writer.
func Open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	database, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w: %w", ErrStorageUnavailable, err)
	}
	if dialect == DialectSQLite {
		database.SetMaxOpenConns(1)
	}

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w: %w", ErrStorageUnavailable, err)
	}

	if err := Migrate(ctx, database, dialect); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}

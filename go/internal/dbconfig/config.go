package dbconfig

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/mcdev12/rosterbook/go/internal/db"
)

// Config holds entity store connection settings.
type Config struct {
	Driver   db.Dialect
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	// Path is the SQLite database file, ":memory:" for a throwaway store
	Path string
}

// NewConfigFromEnv reads DB_* environment variables (with defaults).
func NewConfigFromEnv() Config {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		port = 5432
	}

	return Config{
		Driver:   db.Dialect(getEnv("DB_DRIVER", string(db.DialectPostgres))),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Database: getEnv("DB_NAME", "rosterbook"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		Path:     getEnv("DB_PATH", "rosterbook.db"),
	}
}

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.Driver == db.DialectSQLite {
		return SQLiteDSN(c.Path)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// SQLiteDSN enables foreign keys (needed for team cascades) and a busy timeout.
func SQLiteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Open connects to the configured store and applies migrations.
func (c Config) Open(ctx context.Context) (*sql.DB, error) {
	return db.Open(ctx, c.Driver, c.DSN())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package testdb provides test database utilities.
//
// Each TestDB is a migrated SQLite file in the test's temp directory, so tests
// run real queries against the same schema the server uses without needing a
// running Postgres.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    repo := matches.NewRepository(tdb.Queries, tdb.DB)
//	}
package testdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/dbconfig"
)

// TestDB provides an isolated database environment for testing
type TestDB struct {
	DB      *sql.DB
	Queries *db.Queries
	Path    string
	t       *testing.T
}

// New creates a fresh database with migrations applied. It is closed when the test ends.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "roster.db")
	database, err := db.Open(ctx, db.DialectSQLite, dbconfig.SQLiteDSN(path))
	if err != nil {
		t.Fatalf("testdb: failed to open: %v", err)
	}

	tdb := &TestDB{
		DB:      database,
		Queries: db.New(database, db.DialectSQLite),
		Path:    path,
		t:       t,
	}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close releases the connection. Safe to call more than once.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}
	_ = tdb.DB.Close()
	tdb.DB = nil
}

// Ctx returns a context with a reasonable timeout for test operations
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a statement and fails the test on error
func (tdb *TestDB) MustExec(query string, args ...interface{}) {
	tdb.t.Helper()
	if _, err := tdb.DB.ExecContext(tdb.Ctx(), query, args...); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
}

// Package db holds the SQL queries behind every repository.
//
// The package is laid out the way sqlc generates code (DBTX, Queries, WithTx,
// one file per table) but is written by hand so the same queries can run on
// Postgres (lib/pq) and on an embedded SQLite file (modernc.org/sqlite).
// Queries are written with "?" placeholders and rebound per dialect.
package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax and migration set
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

// Rebind rewrites "?" placeholders into "$1..$n" for Postgres.
// Question marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

type Queries struct {
	db      DBTX
	dialect Dialect
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{
		db:      tx,
		dialect: q.dialect,
	}
}

func (q *Queries) exec(ctx context.Context, op, query string, args ...interface{}) (sql.Result, error) {
	res, err := q.db.ExecContext(ctx, q.dialect.Rebind(query), args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	return res, nil
}

func (q *Queries) query(ctx context.Context, op, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := q.db.QueryContext(ctx, q.dialect.Rebind(query), args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	return rows, nil
}

func (q *Queries) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return q.db.QueryRowContext(ctx, q.dialect.Rebind(query), args...)
}

// expandSlice replaces the /*SLICE:name*/? marker with one placeholder per element
func expandSlice(query, name string, n int) string {
	marker := "/*SLICE:" + name + "*/?"
	if n <= 0 {
		return strings.Replace(query, marker, "NULL", 1)
	}
	return strings.Replace(query, marker, strings.Repeat(",?", n)[1:], 1)
}

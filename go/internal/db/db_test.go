package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b IN (?,?) AND c = '?'"

	assert.Equal(t, q, DialectSQLite.Rebind(q))
	assert.Equal(t,
		"SELECT * FROM t WHERE a = $1 AND b IN ($2,$3) AND c = '?'",
		DialectPostgres.Rebind(q),
	)
}

func TestExpandSlice(t *testing.T) {
	q := "WHERE id IN (/*SLICE:ids*/?) AND x = ?"

	assert.Equal(t, "WHERE id IN (?,?,?) AND x = ?", expandSlice(q, "ids", 3))
	assert.Equal(t, "WHERE id IN (NULL) AND x = ?", expandSlice(q, "ids", 0))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, wrap("op", nil))
	assert.ErrorIs(t, wrap("op", sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, wrap("op", driver.ErrBadConn), ErrStorageUnavailable)
	assert.ErrorIs(t, wrap("op", sql.ErrConnDone), ErrStorageUnavailable)
	assert.ErrorIs(t, wrap("op", context.Canceled), context.Canceled)

	err := wrap("op", errors.New("malformed row"))
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (id TEXT);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (id TEXT);\n", ExtractUpMigration(content))
	assert.Equal(t, "CREATE TABLE b (id TEXT);", ExtractUpMigration("CREATE TABLE b (id TEXT);"))
}

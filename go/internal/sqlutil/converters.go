package sqlutil

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Helper functions for converting between Go types and sql.Null* types

// ToSqlString converts a Go string to sql.NullString, treating "" as NULL
func ToSqlString(val string) sql.NullString {
	return sql.NullString{String: val, Valid: val != ""}
}

// ToSqlInt32 converts a Go int pointer to sql.NullInt32
func ToSqlInt32(val *int) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: int32(*val), Valid: true}
}

// ToSqlInt32Direct converts a Go int to sql.NullInt32
func ToSqlInt32Direct(val int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(val), Valid: true}
}

// ToSqlBool converts a Go bool pointer to sql.NullBool
func ToSqlBool(val *bool) sql.NullBool {
	if val == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *val, Valid: true}
}

// ToNullUUID converts a Go UUID pointer to uuid.NullUUID
func ToNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{Valid: false}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// FromSqlString converts sql.NullString to Go string with default
func FromSqlString(val sql.NullString, defaultVal string) string {
	if !val.Valid {
		return defaultVal
	}
	return val.String
}

// FromSqlInt32 converts sql.NullInt32 to Go int, 0 when NULL
func FromSqlInt32(val sql.NullInt32) int {
	if !val.Valid {
		return 0
	}
	return int(val.Int32)
}

// FromSqlBool converts sql.NullBool to Go bool, false when NULL
func FromSqlBool(val sql.NullBool) bool {
	return val.Valid && val.Bool
}

// FromNullUUID converts uuid.NullUUID to Go UUID pointer
func FromNullUUID(val uuid.NullUUID) *uuid.UUID {
	if !val.Valid {
		return nil
	}
	return &val.UUID
}

// ToMillis converts a time to unix milliseconds in UTC. The zero time maps to NULL.
func ToMillis(val time.Time) sql.NullInt64 {
	if val.IsZero() {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: val.UTC().UnixMilli(), Valid: true}
}

// FromMillis converts unix milliseconds back to a UTC time, the zero time when NULL
func FromMillis(val sql.NullInt64) time.Time {
	if !val.Valid {
		return time.Time{}
	}
	return time.UnixMilli(val.Int64).UTC()
}

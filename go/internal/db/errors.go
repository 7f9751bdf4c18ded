package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

// Standard errors for storage operations. Use errors.Is to check them.
var (
	// ErrNotFound indicates a single-row lookup matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrStorageUnavailable indicates the store could not be reached or a connection broke.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrFetchFailed indicates the store was reachable but the read or write failed
	// (syntax error, schema mismatch, corrupted row, constraint violation).
	ErrFetchFailed = errors.New("fetch failed")
)

// wrap classifies a driver error into one of the sentinel errors while keeping the cause
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	case isUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

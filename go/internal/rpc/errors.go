package rpc

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
)

// Error maps an app error onto a connect error so the caller can tell
// "query failed" apart from "no data".
func Error(err error) error {
	if err == nil {
		return nil
	}
	if IsConnectError(err) {
		return err
	}
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, db.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, db.ErrStorageUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

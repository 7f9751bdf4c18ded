package rpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	assert.Equal(t, "json", codec.Name())

	type msg struct {
		TeamId string `json:"team_id"`
	}
	data, err := codec.Marshal(&msg{TeamId: "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"team_id":"abc"}`, string(data))

	var out msg
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, "abc", out.TeamId)

	require.NoError(t, codec.Unmarshal(nil, &out), "empty body is an empty message")
}

func TestParseID(t *testing.T) {
	_, err := ParseID("team_id", "")
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = ParseID("team_id", "not-a-uuid")
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	id, err := ParseID("team_id", " 9b2f1f3c-54a6-4d0e-9a51-2c1b6a7d8e90 ")
	require.NoError(t, err)
	assert.Equal(t, "9b2f1f3c-54a6-4d0e-9a51-2c1b6a7d8e90", id.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"invalid input", fmt.Errorf("validation failed: %w", models.ErrInvalidInput), connect.CodeInvalidArgument},
		{"not found", fmt.Errorf("get team: %w", db.ErrNotFound), connect.CodeNotFound},
		{"unavailable", fmt.Errorf("list: %w", db.ErrStorageUnavailable), connect.CodeUnavailable},
		{"fetch failed", fmt.Errorf("list: %w", db.ErrFetchFailed), connect.CodeInternal},
		{"canceled", context.Canceled, connect.CodeCanceled},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"unknown", errors.New("boom"), connect.CodeInternal},
		{"already connect", connect.NewError(connect.CodeAlreadyExists, errors.New("dup")), connect.CodeAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connect.CodeOf(Error(tt.err)))
		})
	}
	assert.NoError(t, Error(nil))
}

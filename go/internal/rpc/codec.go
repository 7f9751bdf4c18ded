// Package rpc holds the connect plumbing shared by every service: the JSON
// codec for plain Go messages, argument parsing and error mapping.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

const codecNameJSON = "json"

// JSONCodec replaces connect's protojson codec so messages can be plain structs
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return codecNameJSON }

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}

// HandlerOptions returns the options every roster handler is built with
func HandlerOptions(extra ...connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, extra...)
}

// ClientOptions returns the options a roster client needs to talk to the handlers
func ClientOptions(extra ...connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, extra...)
}

// ParseID parses a required uuid argument, returning an InvalidArgument error on failure
func ParseID(field, value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is required", field))
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s: %w", field, err))
	}
	return id, nil
}

// InvalidArgument wraps err as a connect InvalidArgument error
func InvalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// IsConnectError reports whether err already carries a connect code
func IsConnectError(err error) bool {
	var connectErr *connect.Error
	return errors.As(err, &connectErr)
}

package models

import "errors"

// ErrInvalidInput is wrapped by validation failures in the app layer
var ErrInvalidInput = errors.New("invalid input")

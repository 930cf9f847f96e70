package services

import "errors"

// Error kinds the handlers map to HTTP statuses. Anything not wrapping one
// of these is treated as a storage failure and the operation is not applied.
var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by services. Handlers map these onto HTTP statuses;
// everything else is treated as a dependency failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
)

// NotFoundError reports a missing entity by name and id
func NotFoundError(entity string, id int32) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// ConflictError reports a uniqueness or state-transition conflict
func ConflictError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}

// InvalidArgumentError reports a malformed input value
func InvalidArgumentError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidArgument)
}

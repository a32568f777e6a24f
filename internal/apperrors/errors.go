package apperrors

import (
	"errors"
	"fmt"
)

// ErrRoomUnavailable covers both "room does not exist" and "room is closed"
// for token issuance. The two cases are deliberately indistinguishable to the
// caller.
var ErrRoomUnavailable = errors.New("room not available")

// ValidationError reports client input that fails a schema, range or format
// constraint. It is always raised before any side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a plain lookup miss.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("room %s not found", e.ID)
}

// RepositoryError wraps a backing-store failure unrelated to input
// correctness. The wrapped cause is for logs, not for clients.
type RepositoryError struct {
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %v", e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// SigningError reports a credential-minting failure caused by missing or
// invalid signing configuration.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("token signing: %v", e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

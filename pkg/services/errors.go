package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a write violates a uniqueness or
	// single-active-rule invariant
	ErrConflict = errors.New("conflicting entity exists")

	// ErrFKDependency is returned when a row references a dependency that
	// has not been materialized yet (message before contact/chat)
	ErrFKDependency = errors.New("missing dependency row")

	// ErrDuplicate is returned by Enqueue when an item with the same
	// idempotency key is already in flight
	ErrDuplicate = errors.New("duplicate queue item suppressed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorClass partitions storage failures by how callers should react.
type ErrorClass string

// Error classes, from "fix the request" to "retry later".
const (
	ClassNotFound    ErrorClass = "not_found"
	ClassConflict    ErrorClass = "conflict"
	ClassFKViolation ErrorClass = "fk_violation"
	ClassTransient   ErrorClass = "transient"
	ClassPermanent   ErrorClass = "permanent"
	ClassValidation  ErrorClass = "validation"
)

// Postgres SQLSTATE codes the classifier cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify maps an error to its class. FK violations are distinct from
// plain transients because a message insert failing on 23503 means
// dependency materialization must be re-run, not just retried.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return ClassNotFound
	case errors.Is(err, ErrConflict):
		return ClassConflict
	case errors.Is(err, ErrFKDependency):
		return ClassFKViolation
	case IsValidationError(err), errors.Is(err, ErrInvalidInput):
		return ClassValidation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ClassFKViolation
		case pgUniqueViolation:
			return ClassConflict
		}
		// Connection and resource errors (class 08, 53, 57) retry;
		// everything else points at a bug.
		switch pgErr.Code[:2] {
		case "08", "53", "57":
			return ClassTransient
		}
		return ClassPermanent
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ClassTransient
	}

	// Unknown errors are assumed transient: wrongly retrying a permanent
	// failure costs max_attempts tries, wrongly dropping a transient one
	// loses the event.
	return ClassTransient
}

// IsRetryable reports whether a failure should re-enter the queue.
func IsRetryable(err error) bool {
	return Classify(err) == ClassTransient
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/reflexhq/reflex/ent/failedevent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "not found", err: fmt.Errorf("msg: %w", ErrNotFound), expected: ClassNotFound},
		{name: "conflict", err: ErrConflict, expected: ClassConflict},
		{name: "fk dependency sentinel", err: ErrFKDependency, expected: ClassFKViolation},
		{name: "validation error", err: NewValidationError("field", "bad"), expected: ClassValidation},
		{name: "invalid input", err: ErrInvalidInput, expected: ClassValidation},
		{name: "pg fk violation", err: &pgconn.PgError{Code: "23503"}, expected: ClassFKViolation},
		{name: "pg unique violation", err: &pgconn.PgError{Code: "23505"}, expected: ClassConflict},
		{name: "pg connection failure", err: &pgconn.PgError{Code: "08006"}, expected: ClassTransient},
		{name: "pg out of memory", err: &pgconn.PgError{Code: "53200"}, expected: ClassTransient},
		{name: "pg syntax error", err: &pgconn.PgError{Code: "42601"}, expected: ClassPermanent},
		{name: "deadline", err: context.DeadlineExceeded, expected: ClassTransient},
		{name: "unknown defaults to transient", err: errors.New("boom"), expected: ClassTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestClassifyWrappedPgError(t *testing.T) {
	err := fmt.Errorf("failed to save: %w", &pgconn.PgError{Code: "23503"})
	assert.Equal(t, ClassFKViolation, Classify(err))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("flaky")))
	assert.False(t, IsRetryable(ErrConflict))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "42601"}))
}

func TestErrorKindFor(t *testing.T) {
	assert.Equal(t, failedevent.ErrorKindFkDependency, ErrorKindFor(ClassFKViolation))
	assert.Equal(t, failedevent.ErrorKindTransient, ErrorKindFor(ClassTransient))
	assert.Equal(t, failedevent.ErrorKindValidation, ErrorKindFor(ClassValidation))
	assert.Equal(t, failedevent.ErrorKindPermanent, ErrorKindFor(ClassConflict))
	assert.Equal(t, failedevent.ErrorKindPermanent, ErrorKindFor(ClassPermanent))
}

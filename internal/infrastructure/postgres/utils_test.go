package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsUniqueViolation_ErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
}

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: "40001"}), "serialization_failure")
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: "40P01"}), "deadlock_detected")
	assert.False(t, isRetryableTxError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableTxError(errors.New("otro error")))
	assert.False(t, isRetryableTxError(nil))
}

func TestIsRetryableTxError_ErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("apply delta: %w", &pgconn.PgError{Code: "40001"})
	assert.True(t, isRetryableTxError(wrapped))
}

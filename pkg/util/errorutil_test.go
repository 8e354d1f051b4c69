package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewNotFound("seller", nil), "NOT_FOUND", http.StatusNotFound},
		{NewUnauthorized("invalid credentials"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("not yours"), "FORBIDDEN", http.StatusForbidden},
		{NewConflict("duplicate", nil), "CONFLICT", http.StatusConflict},
		{NewFailedDependency("seller down", nil), "FAILED_DEPENDENCY", http.StatusFailedDependency},
		{NewWarrantyExpired("expired"), "WARRANTY_EXPIRED", http.StatusBadRequest},
		{NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr, tc.code)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewConflict("duplicate", map[string]any{"field": "email"})
	wrapped := fmt.Errorf("register: %w", original)

	got := ToDomainError(wrapped)
	assert.Equal(t, "CONFLICT", got.Code)
	assert.Equal(t, "email", got.Details["field"])
}

func TestToDomainErrorGeneric(t *testing.T) {
	got := ToDomainError(errors.New("connection refused"))
	assert.Equal(t, "INTERNAL_ERROR", got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)

	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainErrorNoRows(t *testing.T) {
	got := ToDomainError(sql.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", got.Code)
}

func TestNotFoundMessage(t *testing.T) {
	assert.EqualError(t, NewNotFound("claim", nil), "claim not found")
}

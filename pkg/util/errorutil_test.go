package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "nil stays nil", err: nil},
		{name: "passthrough", err: NewForbidden("nope"), wantCode: "FORBIDDEN", wantStatus: http.StatusForbidden},
		{name: "wrapped domain error", err: fmt.Errorf("outer: %w", NewNotFound("release", nil)), wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "no rows maps to not found", err: sql.ErrNoRows, wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "pgx no rows maps to not found", err: pgx.ErrNoRows, wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "wrapped pgx no rows maps to not found", err: fmt.Errorf("update release: %w", pgx.ErrNoRows), wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "unknown error is internal", err: errors.New("boom"), wantCode: "INTERNAL_ERROR", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToDomainError(tt.err)
			if tt.err == nil {
				assert.Nil(t, result)
				return
			}
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantStatus, result.HTTPStatus)
		})
	}
}

func TestConflictUsesBadRequest(t *testing.T) {
	err := NewConflict("email already registered", nil)
	domainErr := ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("driver failure")
	err := NewInternalError(inner)
	assert.True(t, errors.Is(err, inner))
}

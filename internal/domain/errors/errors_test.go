package errors

import (
	"net/http"
	"testing"

	"habit/internal/domain/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrForbidden.WithDetails("schedule 7")

	assert.ErrorIs(t, detailed, ErrForbidden)
	assert.NotErrorIs(t, detailed, ErrNotFound)
	assert.ErrorIs(t, errors.Wrap(detailed, "update schedule"), ErrForbidden)
	assert.Equal(t, "schedule 7", detailed.Details())
	assert.Empty(t, ErrForbidden.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrConflict.WrapMessage("unit exists")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestValidationError(t *testing.T) {
	failures := []validation.Failure{
		{Name: "username", Code: validation.CodeWrongInput, Message: "m1"},
		{Name: "username", Code: validation.CodeDuplicate, Message: "m2"},
	}
	err := NewValidationError("createMember", failures)

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILURE", err.ErrorCode())
	assert.Equal(t, failures, err.Failures())

	var target *ValidationError
	require.True(t, errors.As(errors.WithStack(err), &target))
	assert.Len(t, target.Failures(), 2)
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *BaseError
		status int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrAccessTokenNotProvided, http.StatusForbidden},
		{ErrInvalidAccessToken, http.StatusUnauthorized},
		{ErrExpiredAccessToken, http.StatusUnauthorized},
		{ErrInvalidRefreshToken, http.StatusUnauthorized},
		{ErrUnauthorizedRefreshToken, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrLogInFailure, http.StatusNotFound},
		{ErrMemberNotFound, http.StatusNotFound},
		{ErrMaxDepthExceeded, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPCode())
		})
	}
}

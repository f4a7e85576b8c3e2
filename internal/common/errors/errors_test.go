package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrCodeCacheError, "cache operation failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CACHE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeValidation, "name is required")

	// Direct.
	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, ErrCodeValidation, got.Code)

	// Buried in a chain of plain wrappers.
	wrapped := fmt.Errorf("handling request: %w", appErr)
	got, ok = AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeValidation, got.Code)

	// Absent.
	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		code            ErrorCode
		validation      bool
		refreshFailure  bool
		upstream        bool
	}{
		{ErrCodeValidation, true, false, false},
		{ErrCodeRefreshFailed, false, true, false},
		{ErrCodeGitHubAPI, false, false, true},
		{ErrCodeUserNotFound, false, false, true},
		{ErrCodeRateLimit, false, false, true},
		{ErrCodeIncompleteFetch, false, false, true},
		{ErrCodeCacheError, false, false, false},
		{ErrCodeInternal, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.validation, err.IsValidation())
			assert.Equal(t, tt.refreshFailure, err.IsRefreshFailure())
			assert.Equal(t, tt.upstream, err.IsUpstream())
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := NewCacheError("get", stderrors.New("timeout")).WithDetail("username", "octocat")

	assert.Equal(t, "get", err.Details["operation"])
	assert.Equal(t, "octocat", err.Details["username"])
}

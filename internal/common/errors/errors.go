package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// Upstream (GitHub GraphQL API) failures.
	ErrCodeGitHubAPI       ErrorCode = "GITHUB_API_ERROR"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeRateLimit       ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeIncompleteFetch ErrorCode = "INCOMPLETE_FETCH"

	// Cache store failures.
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"

	// A stale-refresh attempt failed; the previously cached record is intact.
	ErrCodeRefreshFailed ErrorCode = "REFRESH_FAILED"
)

// AppError is the typed error carried across layer boundaries.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether the error never touched the store or upstream.
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation
}

// IsRefreshFailure reports whether a stale-refresh attempt failed.
func (e *AppError) IsRefreshFailure() bool {
	return e.Code == ErrCodeRefreshFailed
}

// IsUpstream reports whether the error originated at the GitHub API.
func (e *AppError) IsUpstream() bool {
	return e.Code == ErrCodeGitHubAPI ||
		e.Code == ErrCodeUserNotFound ||
		e.Code == ErrCodeRateLimit ||
		e.Code == ErrCodeIncompleteFetch
}

// WithDetail attaches structured context for logging.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID tags the error with the originating request.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates a new application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// AsAppError extracts an AppError from anywhere in the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NewValidationError reports malformed client input.
func NewValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NewCacheError reports a cache store failure.
func NewCacheError(operation string, err error) *AppError {
	return Wrapf(err, ErrCodeCacheError, "cache operation failed: %s", operation).
		WithDetail("operation", operation)
}

// NewGitHubAPIError reports an upstream GitHub API failure.
func NewGitHubAPIError(operation string, err error) *AppError {
	return Wrapf(err, ErrCodeGitHubAPI, "github api operation failed: %s", operation).
		WithDetail("operation", operation)
}

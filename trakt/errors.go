package trakt

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidArgument indicates a required argument was missing or of the wrong kind
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfig indicates invalid client settings
	ErrInvalidConfig = errors.New("invalid trakt configuration")
)

// InvalidArgumentError describes a required argument that failed validation.
// It is returned before any request is sent.
type InvalidArgumentError struct {
	Param string
	Kind  ArgKind
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	if e.Kind == ArgPeriod {
		return fmt.Sprintf("invalid argument: %s must be one of weekly, monthly, yearly, all", e.Param)
	}
	return fmt.Sprintf("invalid argument: %s must be a non-empty %s", e.Param, e.Kind)
}

// Is reports whether target is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// configError wraps a validation failure detected while building a Client.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfig, e.err)
}

func (e *configError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *configError) Unwrap() error {
	return e.err
}

// APIError represents a non-2xx response from the Trakt API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	URL        string
	Header     http.Header
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("trakt API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the API rejected the request for exceeding the rate limit.
// The client never retries; callers decide what to do with the Retry-After header.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

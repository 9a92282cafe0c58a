package github

import (
	"errors"
	"fmt"
	"time"
)

// FailureKind classifies why a single archive download failed.
type FailureKind string

const (
	// FailStatus is a non-success HTTP response.
	FailStatus FailureKind = "http status"

	// FailConnection is a failure to establish or keep the connection.
	FailConnection FailureKind = "connection"

	// FailTimeout is a request that exceeded its deadline.
	FailTimeout FailureKind = "timeout"

	// FailTransport is any other transport-level failure.
	FailTransport FailureKind = "transport"
)

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// DownloadError represents a failed archive download for one repository.
// Download errors are per-item: callers log them and continue the batch.
type DownloadError struct {
	Repo   string
	Kind   FailureKind
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Kind == FailStatus {
		return fmt.Sprintf("github: download %s: %s %d", e.Repo, e.Kind, e.Status)
	}
	return fmt.Sprintf("github: download %s: %s error: %v", e.Repo, e.Kind, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	var dlErr *DownloadError
	if errors.As(err, &dlErr) {
		return dlErr.Kind == FailStatus && dlErr.Status == 404
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

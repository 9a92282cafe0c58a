package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidUsername indicates the configured GitHub username does not
	// match GitHub's username grammar.
	ErrInvalidUsername = errors.New("invalid GitHub username")

	// ErrInvalidToken indicates the configured token does not match any
	// recognised GitHub personal access token shape.
	ErrInvalidToken = errors.New("invalid GitHub token")

	// ErrInvalidDownloadPath indicates the download path is empty or not
	// absolute.
	ErrInvalidDownloadPath = errors.New("invalid download path")

	// ErrAuthRequired indicates an operation needs a token but none is
	// configured.
	ErrAuthRequired = errors.New("authentication required")
)

package domain

import "errors"

// Sentinel errors for classifying failures across the registrar, DNS and
// server operation sets. Callers wrap these so the CLI can render error
// categories uniformly without inspecting transport details.
//
//	return fmt.Errorf("record %q: %w", id, domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// registering a domain that is already taken.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the request was rejected locally before
	// any network call was made.
	ErrInvalidInput = errors.New("invalid input")
)

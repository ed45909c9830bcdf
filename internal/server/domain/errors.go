package domain

import shared "nathanbeddoewebdev/njalla/internal/domain"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = shared.ErrNotFound
	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = shared.ErrUnauthorized
	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = shared.ErrRateLimited
	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = shared.ErrConflict
	// ErrInvalidInput indicates a request rejected before any network call.
	ErrInvalidInput = shared.ErrInvalidInput
)

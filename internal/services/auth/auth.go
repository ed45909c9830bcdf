// Package auth resolves the API token and manages the copy kept in the
// OS keychain.
package auth

import "errors"

// ServiceName is the keychain service the token is stored under.
const ServiceName = "njalla"

// accountName is the keychain account holding the API token.
const accountName = "api-token"

// ErrTokenNotFound is returned when no source supplies a token.
var ErrTokenNotFound = errors.New("auth token not found")

// Store persists the API token.
type Store interface {
	SetToken(token string) error
	GetToken() (string, error)
	DeleteToken() error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

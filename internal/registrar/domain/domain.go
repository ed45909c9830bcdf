// Package domain defines the registrar types: registered domains,
// marketplace search results and asynchronous registration tasks.
package domain

import (
	"fmt"

	shared "nathanbeddoewebdev/njalla/internal/domain"
)

// Re-export shared sentinel errors so registrar callers do not need to
// import the cross-domain package directly.
var (
	ErrNotFound     = shared.ErrNotFound
	ErrUnauthorized = shared.ErrUnauthorized
	ErrRateLimited  = shared.ErrRateLimited
	ErrConflict     = shared.ErrConflict
	ErrInvalidInput = shared.ErrInvalidInput
)

// Domain is a domain registered on the account. Domains are created and
// destroyed server-side; the client only reads them or triggers a
// registration.
type Domain struct {
	Name   string `json:"name"`
	Status string `json:"status"`

	// Expiry is the expiration timestamp as the API formats it.
	Expiry string `json:"expiry"`

	// The fields below are only returned by get-domain.
	Locked         *bool    `json:"locked,omitempty"`
	MailForwarding *bool    `json:"mailforwarding,omitempty"`
	MaxNameservers *int     `json:"max_nameservers,omitempty"`
	Nameservers    []string `json:"nameservers,omitempty"`
}

// TaskID identifies an asynchronous registration task.
type TaskID string

// UnmarshalJSON accepts a JSON string or number.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	s, err := shared.DecodeID(data)
	if err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(s)
	return nil
}

// Package domain defines the VPS types exchanged with the server methods.
package domain

import (
	"encoding/json"
	"fmt"

	shared "nathanbeddoewebdev/njalla/internal/domain"
)

// ServerID identifies a server. Numeric and string forms both decode.
type ServerID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ServerID) UnmarshalJSON(data []byte) error {
	s, err := shared.DecodeID(data)
	if err != nil {
		return fmt.Errorf("server id: %w", err)
	}
	*id = ServerID(s)
	return nil
}

// Server is a virtual server on the account.
type Server struct {
	ID     ServerID `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Status string   `json:"status"`
	OS     string   `json:"os"`

	// Expiry is the end of the paid term as the API formats it.
	Expiry    string `json:"expiry"`
	AutoRenew bool   `json:"autorenew"`

	// SSHKey is the public key installed on the server.
	SSHKey string   `json:"ssh_key"`
	IPs    []string `json:"ips"`

	ReverseName string `json:"reverse_name"`
	OSState     string `json:"os_state"`

	// Memory is passed through as sent. The API has reported it both as a
	// number of megabytes and as a string; nil when absent.
	Memory json.RawMessage `json:"memory,omitempty"`
}

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"nathanbeddoewebdev/njalla/internal/domain"
)

// TransportError reports a failure below the API layer: the request could
// not be sent, timed out, or came back with a non-2xx status that carried
// no error envelope.
type TransportError struct {
	Method     Method
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a response body that is not a valid envelope:
// malformed JSON, or neither a result nor an error member.
type ProtocolError struct {
	Method Method
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid response: %s: %v", e.Method, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid response: %s", e.Method, e.Reason)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// APIError is an error reported by the remote service inside the response
// envelope. It is surfaced verbatim.
type APIError struct {
	Method  Method
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: api error (%s): %s", e.Method, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: api error: %s", e.Method, e.Message)
}

// Is lets callers test an APIError against the shared sentinels in the
// domain package while still receiving the APIError itself.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound, domain.ErrUnauthorized, domain.ErrRateLimited, domain.ErrConflict:
		return classify(e.Code, e.Message) == target
	}
	return false
}

// classify maps API codes and messages to domain sentinels where recognisable.
func classify(code Code, message string) error {
	c := strings.ToLower(string(code))
	msg := strings.ToLower(message)
	switch {
	case c == "404" || c == "not_found" ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "no such") ||
		strings.Contains(msg, "does not exist"):
		return domain.ErrNotFound
	case c == "401" || c == "403" || c == "unauthorized" || c == "forbidden" ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "invalid token") ||
		strings.Contains(msg, "authentication"):
		return domain.ErrUnauthorized
	case c == "429" || c == "rate_limited" ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests"):
		return domain.ErrRateLimited
	case c == "409" || c == "conflict" ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "not available"):
		return domain.ErrConflict
	}
	return nil
}

// Code is an API error code. The wire carries either a number or a
// string; both are kept in their textual form.
type Code string

// UnmarshalJSON accepts numeric and string codes.
func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("error code must be a number or string: %w", err)
	}
	*c = Code(n.String())
	return nil
}

// Package rpctest provides an in-memory rpc.Caller for tests.
package rpctest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"nathanbeddoewebdev/njalla/internal/rpc"
)

// Call is a recorded invocation. Params holds the JSON encoding of the
// params value exactly as the real transport would send it.
type Call struct {
	Method rpc.Method
	Params json.RawMessage
}

// ParamsMap decodes the recorded params into a generic map.
func (c Call) ParamsMap() map[string]any {
	var m map[string]any
	_ = json.Unmarshal(c.Params, &m)
	return m
}

// Handler produces the result for a call. A non-nil error is returned to
// the caller unchanged; otherwise result is JSON-encoded and decoded into
// the caller's out value, mirroring the real transport.
type Handler func(params json.RawMessage) (result any, err error)

// Stub is an in-memory rpc.Caller. Methods without a handler fail with an
// error naming the method.
type Stub struct {
	mu       sync.Mutex
	handlers map[rpc.Method]Handler
	calls    []Call
}

// Compile-time check that Stub satisfies rpc.Caller.
var _ rpc.Caller = (*Stub)(nil)

// NewStub returns an empty Stub.
func NewStub() *Stub {
	return &Stub{handlers: make(map[rpc.Method]Handler)}
}

// Handle registers h for method, replacing any previous handler.
func (s *Stub) Handle(method rpc.Method, h Handler) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
	return s
}

// Respond registers a handler that always returns result.
func (s *Stub) Respond(method rpc.Method, result any) *Stub {
	return s.Handle(method, func(json.RawMessage) (any, error) { return result, nil })
}

// RespondRaw registers a handler that always returns the given JSON text.
func (s *Stub) RespondRaw(method rpc.Method, result string) *Stub {
	return s.Respond(method, json.RawMessage(result))
}

// Fail registers a handler that always returns err.
func (s *Stub) Fail(method rpc.Method, err error) *Stub {
	return s.Handle(method, func(json.RawMessage) (any, error) { return nil, err })
}

// Call implements rpc.Caller.
func (s *Stub) Call(_ context.Context, method rpc.Method, params any, out any) error {
	if params == nil {
		params = struct{}{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("rpctest: failed to encode params: %w", err)
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: method, Params: encoded})
	h, ok := s.handlers[method]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("rpctest: no handler for %s", method)
	}

	result, err := h(encoded)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("rpctest: failed to encode result: %w", err)
	}
	return json.Unmarshal(data, out)
}

// Calls returns a copy of all recorded calls in order.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded calls for a single method.
func (s *Stub) CallsTo(method rpc.Method) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

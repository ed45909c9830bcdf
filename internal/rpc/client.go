// Package rpc implements the JSON-RPC transport for the Njalla API.
//
// A Client sends one HTTPS POST per call with the method name and a params
// object, authenticates with the account token, and decodes the response
// envelope into either the caller's result value or one of the typed errors
// in this package. Calls are never retried.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the production API endpoint.
	DefaultEndpoint = "https://njal.la/api/1/"

	// DefaultTimeout bounds a single call, including reading the body.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "njalla-cli"
	authScheme       = "Njalla"
	jsonRPCVersion   = "2.0"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 16 << 20
)

// Caller performs a single remote procedure call. params is encoded as the
// JSON params object; on success the result member is decoded into out
// (which may be nil to discard it).
type Caller interface {
	Call(ctx context.Context, method Method, params any, out any) error
}

// Compile-time check that Client satisfies Caller.
var _ Caller = (*Client)(nil)

// Client is the HTTPS transport for the API. It is safe for concurrent use;
// its configuration is immutable after construction.
type Client struct {
	token     string
	endpoint  string
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient returns a Client that authenticates with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:     token,
		endpoint:  DefaultEndpoint,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// --- Wire types ---

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  Method `json:"method"`
	Params  any    `json:"params"`
}

type errorBody struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Call sends method with params and decodes the result into out.
func (c *Client) Call(ctx context.Context, method Method, params any, out any) error {
	if !method.Valid() {
		return &ProtocolError{Method: method, Reason: "unknown method"}
	}
	if params == nil {
		params = struct{}{}
	}

	id := uuid.NewString()
	log := c.logger.With(
		zap.String("method", string(method)),
		zap.String("request_id", id),
	)
	start := time.Now()

	err := c.do(ctx, method, id, params, out)

	fields := []zap.Field{zap.Duration("duration", time.Since(start))}
	if err != nil {
		log.Debug("rpc call failed", append(fields, zap.Error(err))...)
		return err
	}
	log.Debug("rpc call succeeded", fields...)
	return nil
}

func (c *Client) do(ctx context.Context, method Method, id string, params any, out any) error {
	body, err := json.Marshal(request{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", authScheme+" "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return decodeEnvelope(method, resp.StatusCode, data, out)
}

// decodeEnvelope interprets a response body. An error member wins over the
// HTTP status; a non-2xx status without one is a transport failure; a 2xx
// body must carry a result member.
func decodeEnvelope(method Method, status int, data []byte, out any) error {
	ok := status >= 200 && status < 300

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil || envelope == nil {
		if !ok {
			return &TransportError{Method: method, StatusCode: status, Err: errors.New(http.StatusText(status))}
		}
		if err == nil {
			err = errors.New("body is not a JSON object")
		}
		return &ProtocolError{Method: method, Reason: "malformed envelope", Err: err}
	}

	if raw, present := envelope["error"]; present && !isNull(raw) {
		var body errorBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return &ProtocolError{Method: method, Reason: "malformed error member", Err: err}
		}
		return &APIError{Method: method, Code: body.Code, Message: body.Message}
	}

	if !ok {
		return &TransportError{Method: method, StatusCode: status, Err: errors.New(http.StatusText(status))}
	}

	raw, present := envelope["result"]
	if !present {
		return &ProtocolError{Method: method, Reason: "missing result"}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ProtocolError{Method: method, Reason: "unexpected result shape", Err: err}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

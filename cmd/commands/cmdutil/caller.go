// Package cmdutil holds the plumbing shared by every command group:
// building the RPC caller, rendering results and errors, and the
// interactive confirmation and progress helpers.
package cmdutil

import (
	"context"
	"errors"
	"fmt"

	"nathanbeddoewebdev/njalla/internal/auditlog"
	"nathanbeddoewebdev/njalla/internal/config"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/services/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is reported in the User-Agent header.
var Version = "dev"

// ErrConfig marks failures to load configuration or credentials.
var ErrConfig = errors.New("configuration error")

// CallerFactory builds the rpc.Caller a command talks to.
type CallerFactory func(cmd *cobra.Command) (rpc.Caller, error)

var callerFactory CallerFactory = defaultCaller

// SetCallerFactory replaces the caller factory. Intended for testing.
func SetCallerFactory(f CallerFactory) { callerFactory = f }

// ResetCallerFactory restores the default factory. Intended for testing.
func ResetCallerFactory() { callerFactory = defaultCaller }

// Caller returns the caller for cmd. Token and config problems are
// reported before any request is made.
func Caller(cmd *cobra.Command) (rpc.Caller, error) {
	return callerFactory(cmd)
}

func defaultCaller(cmd *cobra.Command) (rpc.Caller, error) {
	logger := Logger(cmd.Context())

	res, err := auth.DefaultResolver().Resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: no API token (set %s, add it to a .env file, or run 'njalla auth login'): %w",
			ErrConfig, auth.EnvVar, err)
	}
	logger.Debug("resolved api token", zap.String("source", string(res.Source)), zap.String("path", res.Path))

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	client := rpc.NewClient(res.Token,
		rpc.WithEndpoint(cfg.Endpoint),
		rpc.WithTimeout(timeout),
		rpc.WithLogger(logger),
		rpc.WithUserAgent("njalla-cli/"+Version),
	)
	logger.Debug("rpc client ready", zap.String("endpoint", client.Endpoint()), zap.Duration("timeout", timeout))
	return client, nil
}

type loggerKey struct{}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger stored in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return zap.NewNop()
}

// Annotate records what the command is about to act on for the audit log.
func Annotate(cmd *cobra.Command, method rpc.Method, resourceType, resourceID, resourceName string) {
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Method:       string(method),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ResourceName: resourceName,
	}))
}

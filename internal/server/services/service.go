// Package services maps the VPS operations onto RPC calls. Unlike record
// edits there is no read-modify-write here: reset overrides are sent as
// given and omitted fields keep their server-side values.
package services

import (
	"context"
	"fmt"
	"strings"

	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/domain"
	"nathanbeddoewebdev/njalla/internal/sshkeys"
	"nathanbeddoewebdev/njalla/internal/util"
)

// DefaultMonths is the billing term used when none is given.
const DefaultMonths = 1

// Service wraps an rpc.Caller with the server method bindings.
type Service struct {
	caller rpc.Caller
}

// New returns a Service backed by the given caller.
func New(caller rpc.Caller) *Service {
	return &Service{caller: caller}
}

type idParams struct {
	ID domain.ServerID `json:"id"`
}

type resetParams struct {
	ID domain.ServerID `json:"id"`
	domain.ResetServerOpts
}

// ListServers returns the account's servers in server order.
func (s *Service) ListServers(ctx context.Context) ([]domain.Server, error) {
	var out struct {
		Servers []domain.Server `json:"servers"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListServers, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	if out.Servers == nil {
		return []domain.Server{}, nil
	}
	return out.Servers, nil
}

// ListImages returns the OS images add-server and reset-server accept.
func (s *Service) ListImages(ctx context.Context) ([]string, error) {
	var out struct {
		Images []string `json:"images"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListServerImages, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list server images: %w", err)
	}
	if out.Images == nil {
		return []string{}, nil
	}
	return out.Images, nil
}

// ListTypes returns the instance classes add-server and reset-server accept.
func (s *Service) ListTypes(ctx context.Context) ([]string, error) {
	var out struct {
		Types []string `json:"types"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListServerTypes, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list server types: %w", err)
	}
	if out.Types == nil {
		return []string{}, nil
	}
	return out.Types, nil
}

// AddServer provisions a new server. The SSH key may be given as the key
// itself or as a path to a public key file.
func (s *Service) AddServer(ctx context.Context, opts domain.CreateServerOpts) (*domain.Server, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if err := util.ValidateServerName(opts.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	opts.Type = strings.TrimSpace(opts.Type)
	if opts.Type == "" {
		return nil, fmt.Errorf("%w: server type is required", domain.ErrInvalidInput)
	}
	opts.OS = strings.TrimSpace(opts.OS)
	if opts.OS == "" {
		return nil, fmt.Errorf("%w: OS image is required", domain.ErrInvalidInput)
	}
	key, err := sshkeys.Resolve(opts.SSHKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	opts.SSHKey = key
	if opts.Months == 0 {
		opts.Months = DefaultMonths
	}

	var srv domain.Server
	if err := s.caller.Call(ctx, rpc.MethodAddServer, opts, &srv); err != nil {
		return nil, fmt.Errorf("failed to add server %q: %w", opts.Name, err)
	}
	return &srv, nil
}

// StopServer powers a server off.
func (s *Service) StopServer(ctx context.Context, id string) (*domain.Server, error) {
	return s.byID(ctx, rpc.MethodStopServer, "stop", id)
}

// StartServer powers a server on.
func (s *Service) StartServer(ctx context.Context, id string) (*domain.Server, error) {
	return s.byID(ctx, rpc.MethodStartServer, "start", id)
}

// RestartServer reboots a server.
func (s *Service) RestartServer(ctx context.Context, id string) (*domain.Server, error) {
	return s.byID(ctx, rpc.MethodRestartServer, "restart", id)
}

// RemoveServer deletes a server.
func (s *Service) RemoveServer(ctx context.Context, id string) (*domain.Server, error) {
	return s.byID(ctx, rpc.MethodRemoveServer, "remove", id)
}

// ResetServer reinstalls a server. Overrides left nil are not sent; no
// current state is fetched first.
func (s *Service) ResetServer(ctx context.Context, id string, opts domain.ResetServerOpts) (*domain.Server, error) {
	serverID, err := requireID(id)
	if err != nil {
		return nil, err
	}

	if opts.OS != nil {
		v := strings.TrimSpace(*opts.OS)
		if v == "" {
			return nil, fmt.Errorf("%w: OS image override cannot be empty", domain.ErrInvalidInput)
		}
		opts.OS = &v
	}
	if opts.Type != nil {
		v := strings.TrimSpace(*opts.Type)
		if v == "" {
			return nil, fmt.Errorf("%w: server type override cannot be empty", domain.ErrInvalidInput)
		}
		opts.Type = &v
	}
	if opts.SSHKey != nil {
		key, err := sshkeys.Resolve(*opts.SSHKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		opts.SSHKey = &key
	}

	var srv domain.Server
	params := resetParams{ID: serverID, ResetServerOpts: opts}
	if err := s.caller.Call(ctx, rpc.MethodResetServer, params, &srv); err != nil {
		return nil, fmt.Errorf("failed to reset server %q: %w", id, err)
	}
	return &srv, nil
}

func (s *Service) byID(ctx context.Context, method rpc.Method, verb, id string) (*domain.Server, error) {
	serverID, err := requireID(id)
	if err != nil {
		return nil, err
	}

	var srv domain.Server
	if err := s.caller.Call(ctx, method, idParams{ID: serverID}, &srv); err != nil {
		return nil, fmt.Errorf("failed to %s server %q: %w", verb, id, err)
	}
	return &srv, nil
}

func requireID(id string) (domain.ServerID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: server ID is required", domain.ErrInvalidInput)
	}
	return domain.ServerID(id), nil
}

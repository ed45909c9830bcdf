// Package services implements the registrar operations: listing and
// inspecting domains, marketplace search and registration tasks.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nathanbeddoewebdev/njalla/internal/registrar/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/util"
)

// Service wraps an rpc.Caller with the registrar method bindings.
type Service struct {
	caller rpc.Caller
}

// New returns a Service backed by the given caller.
func New(caller rpc.Caller) *Service {
	return &Service{caller: caller}
}

type domainParams struct {
	Domain string `json:"domain"`
}

type registerParams struct {
	Domain string `json:"domain"`
	Years  uint   `json:"years"`
}

type queryParams struct {
	Query string `json:"query"`
}

type taskParams struct {
	ID domain.TaskID `json:"id"`
}

// ListDomains returns the account's domains in server order.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	var out struct {
		Domains []domain.Domain `json:"domains"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListDomains, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	if out.Domains == nil {
		return []domain.Domain{}, nil
	}
	return out.Domains, nil
}

// GetDomain returns a single domain. The API's not-found error is
// surfaced as is and matches domain.ErrNotFound.
func (s *Service) GetDomain(ctx context.Context, name string) (*domain.Domain, error) {
	name, err := requireDomain(name)
	if err != nil {
		return nil, err
	}

	var d domain.Domain
	if err := s.caller.Call(ctx, rpc.MethodGetDomain, domainParams{Domain: name}, &d); err != nil {
		return nil, fmt.Errorf("failed to get domain %q: %w", name, err)
	}
	return &d, nil
}

// FindDomains searches the marketplace. Result entries are passed through
// untouched because their shape varies by availability.
func (s *Service) FindDomains(ctx context.Context, query string) ([]json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}

	var out struct {
		Domains []json.RawMessage `json:"domains"`
	}
	if err := s.caller.Call(ctx, rpc.MethodFindDomains, queryParams{Query: query}, &out); err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", query, err)
	}
	if out.Domains == nil {
		return []json.RawMessage{}, nil
	}
	return out.Domains, nil
}

// RegisterDomain starts a registration and returns the task tracking it.
// Zero years is rejected locally; any other range is left to the server.
func (s *Service) RegisterDomain(ctx context.Context, name string, years uint) (domain.TaskID, error) {
	name, err := requireDomain(name)
	if err != nil {
		return "", err
	}
	if years == 0 {
		return "", fmt.Errorf("%w: years must be at least 1", domain.ErrInvalidInput)
	}

	var out struct {
		Task domain.TaskID `json:"task"`
	}
	if err := s.caller.Call(ctx, rpc.MethodRegisterDomain, registerParams{Domain: name, Years: years}, &out); err != nil {
		return "", fmt.Errorf("failed to register %q: %w", name, err)
	}
	if out.Task == "" {
		return "", &rpc.ProtocolError{Method: rpc.MethodRegisterDomain, Reason: "result has no task id"}
	}
	return out.Task, nil
}

// CheckTask returns the current state of a registration task.
func (s *Service) CheckTask(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	id = domain.TaskID(strings.TrimSpace(string(id)))
	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", domain.ErrInvalidInput)
	}

	var out struct {
		Status domain.TaskStatus `json:"status"`
		Domain json.RawMessage   `json:"domain"`
	}
	if err := s.caller.Call(ctx, rpc.MethodCheckTask, taskParams{ID: id}, &out); err != nil {
		return nil, fmt.Errorf("failed to check task %q: %w", id, err)
	}

	task := &domain.Task{ID: id, Status: out.Status}
	task.Domain = decodeTaskDomain(out.Domain)
	return task, nil
}

// decodeTaskDomain accepts either a domain object or a bare domain name.
func decodeTaskDomain(raw json.RawMessage) *domain.Domain {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var d domain.Domain
	if err := json.Unmarshal(raw, &d); err == nil && d.Name != "" {
		return &d
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil && name != "" {
		return &domain.Domain{Name: name}
	}
	return nil
}

func requireDomain(name string) (string, error) {
	name = util.NormalizeDomain(name)
	if name == "" {
		return "", fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}
	return name, nil
}

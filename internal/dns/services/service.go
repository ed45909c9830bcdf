// Package services provides the DNS record service layer.
//
// The Service type maps record operations onto RPC calls, adding input
// normalisation and validation before anything is sent. CLI commands
// construct a Service from a resolved rpc.Caller and call service methods
// rather than issuing calls directly.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"nathanbeddoewebdev/njalla/internal/dns/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"
)

// Service is the DNS business logic layer. It sits between CLI commands and
// the transport, applying normalisation and validation to all inputs.
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

type recordRefParams struct {
	Domain string          `json:"domain"`
	ID     domain.RecordID `json:"id"`
}

type addRecordParams struct {
	Domain   string            `json:"domain"`
	Name     string            `json:"name"`
	Type     domain.RecordType `json:"type"`
	Content  string            `json:"content"`
	TTL      int               `json:"ttl"`
	Priority *int              `json:"prio,omitempty"`
}

// ListRecords returns all DNS records for the given domain, in the order
// the API returned them.
func (s *Service) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}

	var out struct {
		Records []domain.Record `json:"records"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListRecords, domainParams{Domain: domainName}, &out); err != nil {
		return nil, fmt.Errorf("failed to list records for %q: %w", domainName, err)
	}

	records := make([]domain.Record, 0, len(out.Records))
	for _, r := range out.Records {
		r.Domain = domainName
		records = append(records, r)
	}
	return records, nil
}

// GetRecord returns a single DNS record by domain and ID. The API has no
// single-record lookup, so this lists the domain and picks the match.
func (s *Service) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	raw, err := s.fetchRaw(ctx, domainName, domain.RecordID(id))
	if err != nil {
		return nil, err
	}
	rec, err := raw.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %q for %q: %w", id, domainName, err)
	}
	rec.Domain = domainName
	return rec, nil
}

// AddRecord creates a new DNS record after normalising and validating the
// opts. Validation failures return ErrInvalidInput without any call.
func (s *Service) AddRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}

	opts.Type = normalizeRecordType(opts.Type)
	if err := validateRecordType(opts.Type); err != nil {
		return nil, err
	}
	if err := validateContent(opts.Type, opts.Content); err != nil {
		return nil, err
	}
	if err := validateTTL(opts.TTL); err != nil {
		return nil, err
	}
	if err := validatePriority(opts.Type, opts.Priority); err != nil {
		return nil, err
	}

	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	opts.Name = normalizeSubdomain(opts.Name, domainName)

	params := addRecordParams{
		Domain:   domainName,
		Name:     opts.Name,
		Type:     opts.Type,
		Content:  opts.Content,
		TTL:      opts.TTL,
		Priority: opts.Priority,
	}

	var rec domain.Record
	if err := s.caller.Call(ctx, rpc.MethodAddRecord, params, &rec); err != nil {
		return nil, fmt.Errorf("failed to add record for %q: %w", domainName, err)
	}
	rec.Domain = domainName
	return &rec, nil
}

// EditRecord applies a sparse patch to an existing record.
//
// The record is fetched, the set fields of patch are overlaid onto the
// object exactly as fetched, and the merged object is submitted. Members
// the patch leaves unset are sent back unchanged. The API has no
// compare-and-swap, so this is a best-effort merge: a concurrent edit of
// the same record between the fetch and the submit is silently lost. If the
// fetch fails or the record does not exist, nothing is submitted.
func (s *Service) EditRecord(ctx context.Context, domainName string, id string, patch domain.UpdateRecordOpts) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}

	if patch.Type != nil {
		t := normalizeRecordType(*patch.Type)
		if err := validateRecordType(t); err != nil {
			return nil, err
		}
		patch.Type = &t
	}
	if patch.Content != nil {
		t := domain.RecordType("")
		if patch.Type != nil {
			t = *patch.Type
		}
		if err := validateContent(t, *patch.Content); err != nil {
			return nil, err
		}
	}
	if patch.TTL != nil {
		if err := validateTTL(*patch.TTL); err != nil {
			return nil, err
		}
		// Zero means "default" only when creating; an edit sends the TTL as is.
		if *patch.TTL == 0 {
			return nil, fmt.Errorf("%w: ttl must be greater than 0", domain.ErrInvalidInput)
		}
	}
	if patch.Priority != nil {
		if err := validatePriority("", patch.Priority); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil {
		name := normalizeSubdomain(*patch.Name, domainName)
		patch.Name = &name
	}

	current, err := s.fetchRaw(ctx, domainName, domain.RecordID(id))
	if err != nil {
		return nil, err
	}

	merged, err := patch.Apply(current)
	if err != nil {
		return nil, fmt.Errorf("failed to merge record %q for %q: %w", id, domainName, err)
	}
	merged["domain"], _ = json.Marshal(domainName)

	if err := s.caller.Call(ctx, rpc.MethodEditRecord, merged, nil); err != nil {
		return nil, fmt.Errorf("failed to edit record %q for %q: %w", id, domainName, err)
	}

	rec, err := merged.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %q for %q: %w", id, domainName, err)
	}
	return rec, nil
}

// RemoveRecord deletes a DNS record by domain and ID. Removing a record
// that no longer exists surfaces the API's not-found error.
func (s *Service) RemoveRecord(ctx context.Context, domainName string, id string) error {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}
	if id == "" {
		return fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}

	params := recordRefParams{Domain: domainName, ID: domain.RecordID(id)}
	if err := s.caller.Call(ctx, rpc.MethodRemoveRecord, params, nil); err != nil {
		return fmt.Errorf("failed to remove record %q for %q: %w", id, domainName, err)
	}
	return nil
}

// fetchRaw lists the domain's records and returns the raw object whose id
// matches.
func (s *Service) fetchRaw(ctx context.Context, domainName string, id domain.RecordID) (domain.RawRecord, error) {
	if domainName == "" {
		return nil, fmt.Errorf("%w: domain name is required", domain.ErrInvalidInput)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}

	var out struct {
		Records []domain.RawRecord `json:"records"`
	}
	if err := s.caller.Call(ctx, rpc.MethodListRecords, domainParams{Domain: domainName}, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch record %q for %q: %w", id, domainName, err)
	}

	for _, raw := range out.Records {
		rid, err := raw.ID()
		if err != nil {
			continue
		}
		if rid == id {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("record %q for %q: %w", id, domainName, domain.ErrNotFound)
}

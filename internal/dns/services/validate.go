package services

import (
	"fmt"
	"net"
	"strings"

	"nathanbeddoewebdev/njalla/internal/dns/domain"
	"nathanbeddoewebdev/njalla/internal/util"
)

// DefaultTTL is the TTL applied when none is specified.
const DefaultTTL = 3600

// apexName is the record name the API uses for the root of a domain.
const apexName = "@"

func normalizeDomain(d string) string {
	return util.NormalizeDomain(d)
}

// normalizeRecordType upper-cases a user supplied record type.
func normalizeRecordType(t domain.RecordType) domain.RecordType {
	return domain.RecordType(strings.ToUpper(strings.TrimSpace(string(t))))
}

// normalizeSubdomain strips the root domain suffix from a subdomain if the
// user passes a fully-qualified name (e.g. "www.example.com" when the
// domain is "example.com"), and lowercases the result. The apex is "@".
func normalizeSubdomain(sub, domainName string) string {
	sub = strings.TrimSpace(sub)
	sub = strings.TrimRight(sub, ".")
	sub = strings.ToLower(sub)

	suffix := "." + domainName
	if strings.HasSuffix(sub, suffix) {
		sub = sub[:len(sub)-len(suffix)]
	}
	if sub == domainName || sub == "" {
		sub = apexName
	}

	return sub
}

// validateRecordType returns an error if t is not a supported record type.
func validateRecordType(t domain.RecordType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unsupported record type %q", domain.ErrInvalidInput, t)
	}
	return nil
}

// validateContent checks that the content value is appropriate for the record type.
// It catches obvious mismatches (e.g. a non-IP value for an A record) to give
// the user an early error; the API remains the authority on the rest.
func validateContent(t domain.RecordType, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: record content cannot be empty", domain.ErrInvalidInput)
	}

	switch t {
	case domain.RecordTypeA:
		ip := net.ParseIP(content)
		if ip == nil || ip.To4() == nil {
			return fmt.Errorf("%w: A record content must be a valid IPv4 address, got %q", domain.ErrInvalidInput, content)
		}
	case domain.RecordTypeAAAA:
		ip := net.ParseIP(content)
		if ip == nil || ip.To4() != nil {
			return fmt.Errorf("%w: AAAA record content must be a valid IPv6 address, got %q", domain.ErrInvalidInput, content)
		}
	}

	return nil
}

// validateTTL rejects negative TTLs; zero means "use the default".
func validateTTL(ttl int) error {
	if ttl < 0 {
		return fmt.Errorf("%w: ttl must not be negative, got %d", domain.ErrInvalidInput, ttl)
	}
	return nil
}

// validatePriority requires a priority for record types that carry one.
func validatePriority(t domain.RecordType, prio *int) error {
	if prio != nil && *prio < 0 {
		return fmt.Errorf("%w: priority must not be negative, got %d", domain.ErrInvalidInput, *prio)
	}
	if t.NeedsPriority() && prio == nil {
		return fmt.Errorf("%w: %s records require a priority", domain.ErrInvalidInput, t)
	}
	return nil
}

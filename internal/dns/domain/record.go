package domain

import (
	"fmt"

	shared "nathanbeddoewebdev/njalla/internal/domain"
)

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA       RecordType = "A"
	RecordTypeAAAA    RecordType = "AAAA"
	RecordTypeANAME   RecordType = "ANAME"
	RecordTypeCAA     RecordType = "CAA"
	RecordTypeCNAME   RecordType = "CNAME"
	RecordTypeDS      RecordType = "DS"
	RecordTypeDynamic RecordType = "DYNAMIC"
	RecordTypeHTTPS   RecordType = "HTTPS"
	RecordTypeMX      RecordType = "MX"
	RecordTypeNAPTR   RecordType = "NAPTR"
	RecordTypeNS      RecordType = "NS"
	RecordTypePTR     RecordType = "PTR"
	RecordTypeSRV     RecordType = "SRV"
	RecordTypeSSHFP   RecordType = "SSHFP"
	RecordTypeSVCB    RecordType = "SVCB"
	RecordTypeTLSA    RecordType = "TLSA"
	RecordTypeTXT     RecordType = "TXT"
)

// RecordTypes lists every supported record type in display order.
var RecordTypes = []RecordType{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeANAME,
	RecordTypeCAA,
	RecordTypeCNAME,
	RecordTypeDS,
	RecordTypeDynamic,
	RecordTypeHTTPS,
	RecordTypeMX,
	RecordTypeNAPTR,
	RecordTypeNS,
	RecordTypePTR,
	RecordTypeSRV,
	RecordTypeSSHFP,
	RecordTypeSVCB,
	RecordTypeTLSA,
	RecordTypeTXT,
}

// Valid reports whether t is one of the supported record types.
func (t RecordType) Valid() bool {
	for _, known := range RecordTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NeedsPriority reports whether records of this type carry a priority.
func (t RecordType) NeedsPriority() bool {
	return t == RecordTypeMX || t == RecordTypeSRV
}

// RecordID is the server-assigned record identifier. The API has used both
// numeric and string identifiers; either form decodes to its text.
type RecordID string

// UnmarshalJSON accepts a JSON string or number.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	s, err := shared.DecodeID(data)
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	*id = RecordID(s)
	return nil
}

// Record represents a single DNS record.
type Record struct {
	// ID is the server-assigned record identifier, unique per domain.
	ID RecordID `json:"id"`

	// Domain is the domain this record belongs to (e.g. "example.com").
	// The list call does not repeat it per record; the service fills it in.
	Domain string `json:"domain,omitempty"`

	// Name is the subdomain label, "@" for the apex.
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Content is the record value; its format depends on Type.
	Content string `json:"content"`

	// TTL is the time-to-live in seconds.
	TTL int `json:"ttl"`

	// Priority is set for MX and SRV records and nil otherwise.
	Priority *int `json:"prio,omitempty"`
}

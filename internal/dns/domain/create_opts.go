package domain

// CreateRecordOpts holds the parameters for creating a new DNS record.
type CreateRecordOpts struct {
	// Name is the subdomain label. Empty or "@" targets the apex; a
	// fully-qualified name under the domain is reduced to its label.
	Name string

	// Type is the DNS record type. Required.
	Type RecordType

	// Content is the record value. Required.
	Content string

	// TTL is the time-to-live in seconds.
	// Zero means DefaultTTL.
	TTL int

	// Priority is required for MX and SRV records. nil sends no priority,
	// which is how the API tells priority-less records apart.
	Priority *int
}

// UpdateRecordOpts is a sparse patch for an existing record. A nil field
// leaves the stored value unchanged; it never clears it.
type UpdateRecordOpts struct {
	Name     *string
	Type     *RecordType
	Content  *string
	TTL      *int
	Priority *int
}

// IsEmpty reports whether the patch changes nothing.
func (o UpdateRecordOpts) IsEmpty() bool {
	return o.Name == nil && o.Type == nil && o.Content == nil && o.TTL == nil && o.Priority == nil
}

package domain

import (
	"encoding/json"
	"fmt"
)

// RawRecord is a record object exactly as the API returned it. Members this
// client does not model are kept so they survive a read-modify-write.
type RawRecord map[string]json.RawMessage

// ID decodes the record's identifier.
func (r RawRecord) ID() (RecordID, error) {
	raw, ok := r["id"]
	if !ok {
		return "", fmt.Errorf("record has no id")
	}
	var id RecordID
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", err
	}
	return id, nil
}

// Decode converts the raw object into a Record.
func (r RawRecord) Decode() (*Record, error) {
	data, err := json.Marshal(map[string]json.RawMessage(r))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Apply overlays the set fields of the patch onto a copy of current and
// returns it. Members the patch does not set are carried over untouched,
// byte for byte, including explicit nulls; nothing absent from both the
// patch and current is introduced.
func (o UpdateRecordOpts) Apply(current RawRecord) (RawRecord, error) {
	merged := make(RawRecord, len(current)+5)
	for k, v := range current {
		merged[k] = v
	}

	set := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		merged[key] = data
		return nil
	}

	if o.Name != nil {
		if err := set("name", *o.Name); err != nil {
			return nil, err
		}
	}
	if o.Type != nil {
		if err := set("type", *o.Type); err != nil {
			return nil, err
		}
	}
	if o.Content != nil {
		if err := set("content", *o.Content); err != nil {
			return nil, err
		}
	}
	if o.TTL != nil {
		if err := set("ttl", *o.TTL); err != nil {
			return nil, err
		}
	}
	if o.Priority != nil {
		if err := set("prio", *o.Priority); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

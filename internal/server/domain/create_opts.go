package domain

// CreateServerOpts holds the parameters for add-server. Every field is
// required.
type CreateServerOpts struct {
	Name string `json:"name"`

	// Type is the instance class, one of list-server-types.
	Type string `json:"type"`

	// OS is the image, one of list-server-images.
	OS string `json:"os"`

	// SSHKey is the public key itself, not a path. Callers resolve paths
	// before building the opts.
	SSHKey string `json:"ssh_key"`

	// Months is the billing term paid up front.
	Months uint `json:"months"`
}

// ResetServerOpts are the optional overrides for reset-server. A nil field
// is omitted from the request and the server keeps its current value.
type ResetServerOpts struct {
	OS     *string `json:"os,omitempty"`
	SSHKey *string `json:"ssh_key,omitempty"`
	Type   *string `json:"type,omitempty"`
}

package auditlog

import (
	"strings"

	"github.com/spf13/pflag"
)

// FlagNames lists the flags set on an invocation, in flag-name order.
// Only names are kept: flag values and positional arguments carry tokens,
// keys and record data, none of which belong in the audit log.
func FlagNames(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	var names []string
	fs.Visit(func(f *pflag.Flag) {
		names = append(names, "--"+f.Name)
	})
	return strings.Join(names, " ")
}

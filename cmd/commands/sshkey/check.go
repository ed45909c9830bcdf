package sshkey

import (
	"fmt"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/domain"
	"nathanbeddoewebdev/njalla/internal/sshkeys"

	"github.com/spf13/cobra"
)

// DefaultKeyPath is checked when no key is given.
const DefaultKeyPath = "~/.ssh/id_ed25519.pub"

// CheckCommand returns the "ssh-key check" subcommand.
func CheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path|key]",
		Short: "Validate a public key and show its fingerprint",
		Long: `Validate an SSH public key the same way "server add" does and print its
type, SHA256 fingerprint and comment. The argument is a path to a .pub
file or the key itself.

Examples:
  njalla ssh-key check
  njalla ssh-key check ~/.ssh/work.pub
  njalla ssh-key check "ssh-ed25519 AAAA... me@laptop"`,
		Args: cmdutil.RangeArgs(0, 1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := DefaultKeyPath
	if len(args) == 1 {
		input = args[0]
	}

	key, err := sshkeys.Resolve(input)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	info, err := sshkeys.Describe(key)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return cmdutil.Print(cmd, info)
}

// Package auth implements the "auth" command group for storing and
// inspecting the API token.
package auth

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/services/auth"

	"github.com/spf13/cobra"
)

// Overridden in tests.
var (
	newStore    = auth.DefaultStore
	newResolver = auth.DefaultResolver
)

// NewCommand returns the top-level "auth" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API token",
		Long: `Manage the Njalla API token.

The token is looked up in this order, first match wins:
  1. the ` + auth.EnvVar + ` environment variable
  2. a .env file in the current directory
  3. a .env file in the njalla config directory
  4. the OS keychain entry written by "njalla auth login"`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	cmdutil.AddFormatFlag(cmd)

	return cmd
}

// Package domain implements the "domain" command group: account domains,
// marketplace search and registration tasks.
package domain

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/registrar/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "domain" command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage registered domains",
		Long: `List and inspect the domains on your account, search the marketplace,
and register new domains.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(FindCommand())
	cmd.AddCommand(RegisterCommand())
	cmd.AddCommand(CheckTaskCommand())

	cmdutil.AddFormatFlag(cmd)

	return cmd
}

func newService(cmd *cobra.Command) (*services.Service, error) {
	caller, err := cmdutil.Caller(cmd)
	if err != nil {
		return nil, err
	}
	return services.New(caller), nil
}

// Package server implements the "server" command group for VPS management.
package server

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/server/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "server" command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage virtual servers",
		Long: `List, create, power-cycle, reinstall, and remove the virtual servers on
your account.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ImagesCommand())
	cmd.AddCommand(TypesCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(StopCommand())
	cmd.AddCommand(StartCommand())
	cmd.AddCommand(RestartCommand())
	cmd.AddCommand(ResetCommand())
	cmd.AddCommand(RemoveCommand())

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

// Package record implements the "record" command group for DNS records.
package record

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/dns/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "record" command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "record",
		Aliases: []string{"dns"},
		Short:   "Manage DNS records",
		Long:    `List, show, add, edit and remove DNS records on your domains.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(EditCommand())
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

package domain

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// GetCommand returns the "domain get" subcommand.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a single domain",
		Long: `Show a domain's status, expiry and nameservers.

Example:
  njalla domain get example.com`,
		Args: cmdutil.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	cmdutil.Annotate(cmd, rpc.MethodGetDomain, "domain", "", args[0])

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	d, err := svc.GetDomain(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, d)
}

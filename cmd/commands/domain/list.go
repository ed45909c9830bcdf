package domain

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// ListCommand returns the "domain list" subcommand.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the domains on your account",
		Args:  cmdutil.ExactArgs(0),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	cmdutil.Annotate(cmd, rpc.MethodListDomains, "domain", "", "")

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	domains, err := svc.ListDomains(cmd.Context())
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, domains)
}

package domain

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// FindCommand returns the "domain find" subcommand.
func FindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Search the marketplace for available domains",
		Long: `Search for domains matching a query. Results are printed exactly as the
API returns them.

Example:
  njalla domain find example`,
		Args: cmdutil.ExactArgs(1),
		RunE: runFind,
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	cmdutil.Annotate(cmd, rpc.MethodFindDomains, "domain", "", args[0])

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	results, err := svc.FindDomains(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, results)
}

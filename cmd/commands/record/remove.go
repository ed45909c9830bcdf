package record

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// RemoveCommand returns the "record remove" subcommand.
func RemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <domain> <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a DNS record",
		Long: `Remove a DNS record by its ID.

Example:
  njalla record remove example.com 106926659`,
		Args: cmdutil.ExactArgs(2),
		RunE: runRemove,
	}
}

type removal struct {
	Domain  string `json:"domain"`
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID := args[1]

	cmdutil.Annotate(cmd, rpc.MethodRemoveRecord, "record", recordID, domainName)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	if err := svc.RemoveRecord(cmd.Context(), domainName, recordID); err != nil {
		return err
	}
	return cmdutil.Print(cmd, removal{Domain: domainName, ID: recordID, Removed: true})
}

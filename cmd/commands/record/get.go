package record

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// GetCommand returns the "record get" subcommand.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <domain> <id>",
		Aliases: []string{"show"},
		Short:   "Show a single DNS record",
		Long: `Show one DNS record by its ID. The record is looked up in the
domain's record list.

Example:
  njalla record get example.com 106926659`,
		Args: cmdutil.ExactArgs(2),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID := args[1]

	cmdutil.Annotate(cmd, rpc.MethodListRecords, "record", recordID, domainName)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	record, err := svc.GetRecord(cmd.Context(), domainName, recordID)
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, record)
}

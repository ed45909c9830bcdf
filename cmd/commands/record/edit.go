package record

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	dnsdomain "nathanbeddoewebdev/njalla/internal/dns/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// EditCommand returns the "record edit" subcommand.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <domain> <id>",
		Short: "Edit a DNS record",
		Long: `Change fields of an existing DNS record. Only the flags you pass are
changed; everything else keeps its current value.

Examples:
  njalla record edit example.com 106926659 -c 5.6.7.8
  njalla record edit example.com 106926659 -c 5.6.7.8 --ttl 300`,
		Args: cmdutil.ExactArgs(2),
		RunE: runEdit,
	}

	cmd.Flags().StringP("name", "n", "", "New subdomain name")
	cmd.Flags().StringP("type", "t", "", "New record type")
	cmd.Flags().StringP("content", "c", "", "New record content")
	cmd.Flags().Int("ttl", 0, "New time-to-live in seconds")
	cmd.Flags().IntP("priority", "p", 0, "New record priority")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID := args[1]

	// nil means no change.
	var patch dnsdomain.UpdateRecordOpts
	flags := cmd.Flags()
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		patch.Name = &v
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		t := dnsdomain.RecordType(v)
		patch.Type = &t
	}
	if flags.Changed("content") {
		v, _ := flags.GetString("content")
		patch.Content = &v
	}
	if flags.Changed("ttl") {
		v, _ := flags.GetInt("ttl")
		patch.TTL = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetInt("priority")
		patch.Priority = &v
	}

	cmdutil.Annotate(cmd, rpc.MethodEditRecord, "record", recordID, domainName)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	rec, err := svc.EditRecord(cmd.Context(), domainName, recordID, patch)
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, rec)
}

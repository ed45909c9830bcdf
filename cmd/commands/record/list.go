package record

import (
	"strings"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// ListCommand returns the "record list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List DNS records for a domain",
		Long: `List all DNS records for the given domain.

Examples:
  njalla record list example.com
  njalla record list example.com --type A`,
		Args: cmdutil.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().StringP("type", "t", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	typeFilter, _ := cmd.Flags().GetString("type")

	cmdutil.Annotate(cmd, rpc.MethodListRecords, "domain", "", domainName)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	records, err := svc.ListRecords(cmd.Context(), domainName)
	if err != nil {
		return err
	}

	// Apply optional type filter.
	if typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(string(r.Type), typeFilter) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return cmdutil.Print(cmd, records)
}

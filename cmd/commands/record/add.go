package record

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	dnsdomain "nathanbeddoewebdev/njalla/internal/dns/domain"
	"nathanbeddoewebdev/njalla/internal/dns/services"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// AddCommand returns the "record add" subcommand.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <domain>",
		Short: "Add a DNS record",
		Long: `Add a new DNS record to the given domain.

Examples:
  njalla record add example.com -t A -n www -c 1.2.3.4
  njalla record add example.com -t MX -c mail.example.com -p 10
  njalla record add example.com -t TXT -n _dmarc -c "v=DMARC1; p=none" --ttl 300`,
		Args: cmdutil.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringP("name", "n", "@", "Subdomain name (@ for the apex)")
	cmd.Flags().StringP("type", "t", "", "Record type (A, AAAA, CNAME, MX, TXT, etc.) [required]")
	cmd.Flags().StringP("content", "c", "", "Record content (IP address, hostname, text value, etc.) [required]")
	cmd.Flags().Int("ttl", services.DefaultTTL, "Time-to-live in seconds")
	cmd.Flags().IntP("priority", "p", 0, "Record priority (required for MX and SRV)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	name, _ := cmd.Flags().GetString("name")
	recordType, _ := cmd.Flags().GetString("type")
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")

	// Priority is only sent when given; its absence is meaningful.
	var priority *int
	if cmd.Flags().Changed("priority") {
		v, _ := cmd.Flags().GetInt("priority")
		priority = &v
	}

	cmdutil.Annotate(cmd, rpc.MethodAddRecord, "record", "", domainName)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	rec, err := svc.AddRecord(cmd.Context(), domainName, dnsdomain.CreateRecordOpts{
		Name:     name,
		Type:     dnsdomain.RecordType(recordType),
		Content:  content,
		TTL:      ttl,
		Priority: priority,
	})
	if err != nil {
		return err
	}
	cmdutil.Annotate(cmd, "", "", string(rec.ID), "")

	return cmdutil.Print(cmd, rec)
}

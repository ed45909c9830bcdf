// Package audit implements the "audit" command group over the local audit
// trail.
package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and manage audit history",
		Long: "View a local audit trail of njalla commands and prune old entries.\n\n" +
			"Only command metadata is recorded: the command, the names of the flags it\n" +
			"was given (never their values), the API method and resource, the outcome\n" +
			"and the duration. Set\n" +
			"NJALLA_DISABLE_AUDIT=1 to turn recording off.\n\n" +
			"Audit history is stored locally in ~/.config/njalla/njalla.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}

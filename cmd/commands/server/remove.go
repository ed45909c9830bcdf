package server

import (
	"fmt"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/domain"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
)

// RemoveCommand returns the "server remove" subcommand.
func RemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a server",
		Long: `Remove a server permanently. You are asked to confirm unless --yes is
given; when not running in a terminal, --yes is required.

Examples:
  njalla server remove 12345
  njalla server remove 12345 --yes`,
		Args: cmdutil.ExactArgs(1),
		RunE: runRemove,
	}

	cmdutil.AddYesFlag(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]
	cmdutil.Annotate(cmd, rpc.MethodRemoveServer, "server", id, "")

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Remove server %s? This cannot be undone.", id), "Remove"); err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningText.Render(fmt.Sprintf("Removing server %s...", id)))

	var srv *domain.Server
	err = cmdutil.WithProgress(cmd, "Removing server...", func(func(string)) error {
		var removeErr error
		srv, removeErr = svc.RemoveServer(cmd.Context(), id)
		return removeErr
	})
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, srv)
}

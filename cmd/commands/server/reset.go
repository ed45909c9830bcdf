package server

import (
	"fmt"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/domain"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
)

// ResetCommand returns the "server reset" subcommand.
func ResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Reinstall a server",
		Long: `Reinstall a server, erasing its disk. Flags override the OS image, SSH
key, or type; anything not given keeps its current value.

Examples:
  njalla server reset 12345
  njalla server reset 12345 -o debian12 -s ~/.ssh/id_ed25519.pub --yes`,
		Args: cmdutil.ExactArgs(1),
		RunE: runReset,
	}

	cmd.Flags().StringP("os", "o", "", "New OS image")
	cmd.Flags().StringP("ssh-key", "s", "", "New SSH public key or path to a public key file")
	cmd.Flags().StringP("type", "t", "", "New server type")
	cmdutil.AddYesFlag(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	id := args[0]

	var opts domain.ResetServerOpts
	flags := cmd.Flags()
	if flags.Changed("os") {
		v, _ := flags.GetString("os")
		opts.OS = &v
	}
	if flags.Changed("ssh-key") {
		v, _ := flags.GetString("ssh-key")
		opts.SSHKey = &v
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		opts.Type = &v
	}

	cmdutil.Annotate(cmd, rpc.MethodResetServer, "server", id, "")

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Reinstall server %s? All data on it will be lost.", id), "Reinstall"); err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningText.Render(fmt.Sprintf("Reinstalling server %s...", id)))

	var srv *domain.Server
	err = cmdutil.WithProgress(cmd, "Resetting server...", func(func(string)) error {
		var resetErr error
		srv, resetErr = svc.ResetServer(cmd.Context(), id, opts)
		return resetErr
	})
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, srv)
}

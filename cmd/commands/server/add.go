package server

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/domain"
	"nathanbeddoewebdev/njalla/internal/server/services"

	"github.com/spf13/cobra"
)

// AddCommand returns the "server add" subcommand.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <name>",
		Aliases: []string{"create"},
		Short:   "Create a server",
		Long: `Create a new server. The SSH key may be the public key itself or a path
to a public key file.

Use "njalla server types" and "njalla server images" to see the valid
values for --type and --os.

Examples:
  njalla server add web-1 -t njalla1 -o ubuntu2404 -s ~/.ssh/id_ed25519.pub
  njalla server add web-1 -t njalla2 -o debian12 -s "ssh-ed25519 AAAA... me@host" -m 3`,
		Args: cmdutil.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringP("type", "t", "", "Server type [required]")
	cmd.Flags().StringP("os", "o", "", "OS image [required]")
	cmd.Flags().StringP("ssh-key", "s", "", "SSH public key or path to a public key file [required]")
	cmd.Flags().UintP("months", "m", services.DefaultMonths, "Billing term in months")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	serverType, _ := cmd.Flags().GetString("type")
	image, _ := cmd.Flags().GetString("os")
	key, _ := cmd.Flags().GetString("ssh-key")
	months, _ := cmd.Flags().GetUint("months")

	cmdutil.Annotate(cmd, rpc.MethodAddServer, "server", "", name)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	srv, err := svc.AddServer(cmd.Context(), domain.CreateServerOpts{
		Name:   name,
		Type:   serverType,
		OS:     image,
		SSHKey: key,
		Months: months,
	})
	if err != nil {
		return err
	}
	cmdutil.Annotate(cmd, "", "", string(srv.ID), "")

	return cmdutil.Print(cmd, srv)
}

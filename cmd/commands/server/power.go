package server

import (
	"context"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/domain"
	"nathanbeddoewebdev/njalla/internal/server/services"

	"github.com/spf13/cobra"
)

type powerFunc func(*services.Service, context.Context, string) (*domain.Server, error)

// StopCommand returns the "server stop" subcommand.
func StopCommand() *cobra.Command {
	return powerCommand("stop", "Power off a server", rpc.MethodStopServer, (*services.Service).StopServer)
}

// StartCommand returns the "server start" subcommand.
func StartCommand() *cobra.Command {
	return powerCommand("start", "Power on a server", rpc.MethodStartServer, (*services.Service).StartServer)
}

// RestartCommand returns the "server restart" subcommand.
func RestartCommand() *cobra.Command {
	return powerCommand("restart", "Reboot a server", rpc.MethodRestartServer, (*services.Service).RestartServer)
}

func powerCommand(use, short string, method rpc.Method, op powerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdutil.Annotate(cmd, method, "server", args[0], "")

			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			srv, err := op(svc, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return cmdutil.Print(cmd, srv)
		},
	}
}

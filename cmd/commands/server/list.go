package server

import (
	"context"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/server/services"

	"github.com/spf13/cobra"
)

// ListCommand returns the "server list" subcommand.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List servers on your account",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, rpc.MethodListServers, func(ctx context.Context, svc *services.Service) (any, error) {
				return svc.ListServers(ctx)
			})
		},
	}
}

// ImagesCommand returns the "server images" subcommand.
func ImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List the OS images a server can be installed with",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, rpc.MethodListServerImages, func(ctx context.Context, svc *services.Service) (any, error) {
				return svc.ListImages(ctx)
			})
		},
	}
}

// TypesCommand returns the "server types" subcommand.
func TypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available server types",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, rpc.MethodListServerTypes, func(ctx context.Context, svc *services.Service) (any, error) {
				return svc.ListTypes(ctx)
			})
		},
	}
}

func runCatalog(cmd *cobra.Command, method rpc.Method, fetch func(context.Context, *services.Service) (any, error)) error {
	cmdutil.Annotate(cmd, method, "server", "", "")

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	v, err := fetch(cmd.Context(), svc)
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, v)
}

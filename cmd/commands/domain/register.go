package domain

import (
	"fmt"
	"strconv"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	regdomain "nathanbeddoewebdev/njalla/internal/registrar/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// RegisterCommand returns the "domain register" subcommand.
func RegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <name> [years]",
		Short: "Register a domain",
		Long: `Start registering a domain for the given number of years (default 1).

The API answers with a task id. Pass --wait to poll the task until it
finishes and print the final task instead.

Examples:
  njalla domain register example.com
  njalla domain register example.com 2 --wait`,
		Args: cmdutil.RangeArgs(1, 2),
		RunE: runRegister,
	}

	cmd.Flags().Bool("wait", false, "Poll the registration task until it finishes")

	return cmd
}

type taskRef struct {
	Task regdomain.TaskID `json:"task"`
}

func runRegister(cmd *cobra.Command, args []string) error {
	name := args[0]
	years := uint64(1)
	if len(args) == 2 {
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("%w: years must be a positive integer, got %q", regdomain.ErrInvalidInput, args[1])
		}
		years = n
	}

	cmdutil.Annotate(cmd, rpc.MethodRegisterDomain, "domain", "", name)

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	id, err := svc.RegisterDomain(cmd.Context(), name, uint(years))
	if err != nil {
		return err
	}
	cmdutil.Annotate(cmd, "", "", string(id), "")

	if wait, _ := cmd.Flags().GetBool("wait"); !wait {
		return cmdutil.Print(cmd, taskRef{Task: id})
	}
	return waitAndPrint(cmd, svc, id)
}

package domain

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	regdomain "nathanbeddoewebdev/njalla/internal/registrar/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// CheckTaskCommand returns the "domain check-task" subcommand.
func CheckTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-task <id>",
		Short: "Show the status of a registration task",
		Long: `Show the status of a registration task. With --wait, keep polling until
the task is no longer pending.

Example:
  njalla domain check-task 3f2a9c --wait`,
		Args: cmdutil.ExactArgs(1),
		RunE: runCheckTask,
	}

	cmd.Flags().Bool("wait", false, "Poll until the task finishes")

	return cmd
}

func runCheckTask(cmd *cobra.Command, args []string) error {
	id := regdomain.TaskID(args[0])
	cmdutil.Annotate(cmd, rpc.MethodCheckTask, "task", args[0], "")

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		return waitAndPrint(cmd, svc, id)
	}

	task, err := svc.CheckTask(cmd.Context(), id)
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, task)
}

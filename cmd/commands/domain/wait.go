package domain

import (
	"fmt"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	regdomain "nathanbeddoewebdev/njalla/internal/registrar/domain"
	"nathanbeddoewebdev/njalla/internal/registrar/services"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
)

// waitAndPrint polls the task to completion and prints its final state.
// A failed task is still printed before the error is returned.
func waitAndPrint(cmd *cobra.Command, svc *services.Service, id regdomain.TaskID) error {
	var task *regdomain.Task

	err := cmdutil.WithProgress(cmd, fmt.Sprintf("Waiting for task %s", id), func(report func(string)) error {
		var waitErr error
		task, waitErr = svc.WaitForTask(cmd.Context(), id, func(attempt int, t *regdomain.Task, pollErr error) {
			if pollErr != nil {
				report(fmt.Sprintf("poll %d: %v", attempt, pollErr))
				return
			}
			report(fmt.Sprintf("poll %d: %s", attempt, t.Status))
		})
		return waitErr
	})

	if task != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Task %s %s\n", id, styles.StatusIndicator(string(task.Status)))
		if printErr := cmdutil.Print(cmd, task); printErr != nil && err == nil {
			err = printErr
		}
	}
	return err
}

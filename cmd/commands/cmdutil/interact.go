package cmdutil

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// YesFlag skips confirmation prompts.
const YesFlag = "yes"

// Terminal checks are variables so tests can force either mode.
var (
	StdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	StderrIsTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

func accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// AddYesFlag registers --yes on a destructive command.
func AddYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP(YesFlag, "y", false, "Skip the confirmation prompt")
}

// Confirm asks before a destructive action. --yes skips the prompt; without
// a terminal to ask on, --yes is required.
func Confirm(cmd *cobra.Command, title, affirmative string) error {
	if yes, _ := cmd.Flags().GetBool(YesFlag); yes {
		return nil
	}
	if !StdinIsTerminal() {
		return invalidInput(fmt.Errorf("%s: pass --%s to confirm when not running interactively", title, YesFlag))
	}

	ok := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative(affirmative).
			Negative("Cancel").
			Value(&ok),
	)).WithAccessible(accessible()).WithOutput(cmd.ErrOrStderr()).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// WithProgress runs fn while showing progress on stderr. On a terminal a
// spinner titled title is shown and report is a no-op; otherwise title and
// every reported line are printed as plain text.
func WithProgress(cmd *cobra.Command, title string, fn func(report func(string)) error) error {
	w := cmd.ErrOrStderr()

	if !StderrIsTerminal() {
		fmt.Fprintln(w, styles.MutedText.Render(title))
		return fn(func(line string) {
			fmt.Fprintln(w, styles.MutedText.Render("  "+line))
		})
	}

	var fnErr error
	spinErr := spinner.New().
		Title(title).
		Accessible(accessible()).
		Output(w).
		Action(func() {
			fnErr = fn(func(string) {})
		}).
		Run()
	if spinErr != nil {
		return spinErr
	}
	return fnErr
}

package auth

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/domain"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is overridden in tests.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// LoginCommand returns the "auth login" subcommand.
func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token in the keychain",
		Long: `Store an API token in the local keychain. Without --token you are
prompted for it; the input is not echoed.

Example:
  njalla auth login`,
		Args: cmdutil.ExactArgs(0),
		RunE: runLogin,
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	if token == "" {
		if !cmdutil.StdinIsTerminal() {
			return fmt.Errorf("%w: no terminal to prompt on; pass --token", domain.ErrInvalidInput)
		}
		fmt.Fprint(cmd.ErrOrStderr(), "Enter API token: ")
		b, err := readPassword()
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(b))
	}

	if token == "" {
		return fmt.Errorf("%w: token cannot be empty", domain.ErrInvalidInput)
	}

	if err := newStore().SetToken(token); err != nil {
		return fmt.Errorf("%w: failed to store token: %w", cmdutil.ErrConfig, err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styles.SuccessText.Render("Saved API token to the keychain."))
	return nil
}

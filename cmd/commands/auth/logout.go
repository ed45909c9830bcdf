package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/services/auth"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
)

// LogoutCommand returns the "auth logout" subcommand.
func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the API token from the keychain",
		Long: `Remove the API token stored by "njalla auth login". Tokens supplied by
the environment or a .env file are not touched.`,
		Args: cmdutil.ExactArgs(0),
		RunE: runLogout,
	}
}

func runLogout(cmd *cobra.Command, _ []string) error {
	err := newStore().DeleteToken()
	switch {
	case err == nil:
		fmt.Fprintln(cmd.ErrOrStderr(), styles.SuccessText.Render("Removed API token from the keychain."))
	case errors.Is(err, auth.ErrTokenNotFound):
		fmt.Fprintln(cmd.ErrOrStderr(), styles.MutedText.Render("No API token stored in the keychain."))
	default:
		return fmt.Errorf("%w: failed to remove token: %w", cmdutil.ErrConfig, err)
	}
	return nil
}

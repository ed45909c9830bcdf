package auth

import (
	"errors"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/services/auth"

	"github.com/spf13/cobra"
)

// StatusCommand returns the "auth status" subcommand.
func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API token comes from",
		Long: `Show which source supplies the API token. The token itself is never
printed.

Example:
  njalla auth status`,
		Args: cmdutil.ExactArgs(0),
		RunE: runStatus,
	}
}

type status struct {
	LoggedIn bool        `json:"logged_in"`
	Source   auth.Source `json:"source,omitempty"`
	Path     string      `json:"path,omitempty"`
	Detail   string      `json:"detail,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	res, err := newResolver().Resolve()
	switch {
	case err == nil:
		return cmdutil.Print(cmd, status{LoggedIn: true, Source: res.Source, Path: res.Path})
	case errors.Is(err, auth.ErrTokenNotFound):
		st := status{}
		if err != auth.ErrTokenNotFound {
			st.Detail = err.Error()
		}
		return cmdutil.Print(cmd, st)
	default:
		return err
	}
}

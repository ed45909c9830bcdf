// Package config implements the "config" command group for persistent
// settings.
package config

import (
	"nathanbeddoewebdev/njalla/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage njalla configuration",
		Long: "View and modify persistent njalla settings.\n\n" +
			"Configuration is stored at ~/.config/njalla/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

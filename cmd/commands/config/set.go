package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/config"
	"nathanbeddoewebdev/njalla/internal/domain"
	"nathanbeddoewebdev/njalla/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value unsets the key.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  njalla config set timeout 45s\n" +
			"  njalla config set log-file ~/.cache/njalla/njalla.log",
		Args:         cmdutil.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(util.NormalizeKey(args[0]))
	if spec == nil {
		return fmt.Errorf("%w: unknown configuration key %q (valid: %s)",
			domain.ErrInvalidInput, args[0], strings.Join(config.KeyNames(), ", "))
	}

	value := strings.TrimSpace(args[1])
	if value != "" && spec.Validate != nil {
		if err := spec.Validate(value); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", cmdutil.ErrConfig, err)
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("%w: %w", cmdutil.ErrConfig, err)
	}

	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unset\n", spec.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	}
	return nil
}

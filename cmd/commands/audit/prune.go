package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/njalla/internal/auditlog"
	"nathanbeddoewebdev/njalla/internal/domain"
	"nathanbeddoewebdev/njalla/internal/styles"

	"github.com/spf13/cobra"
)

// PruneCommand returns the "audit prune" subcommand.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than a duration",
		Long: `Delete audit entries older than a duration.

Examples:
  njalla audit prune --older-than 30d
  njalla audit prune --older-than 72h`,
		Args:         cobra.NoArgs,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")

	return cmd
}

func runPrune(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: --older-than is required", domain.ErrInvalidInput)
	}

	olderThan, err := parseDuration(raw)
	if err != nil {
		return err
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	removed, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	noun := "entries"
	if removed == 1 {
		noun = "entry"
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render(fmt.Sprintf("Removed %d audit %s.", removed, noun)))
	return nil
}

// parseDuration accepts Go durations plus a whole-day "Nd" form.
func parseDuration(input string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(input, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid duration %q", domain.ErrInvalidInput, input)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q", domain.ErrInvalidInput, input)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	return d, nil
}

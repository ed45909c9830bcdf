package cmd

import (
	"os"
	"time"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/auditlog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DisableAuditEnv turns audit recording off when set to "1".
const DisableAuditEnv = "NJALLA_DISABLE_AUDIT"

// unaudited lists top-level commands that never get an audit entry.
var unaudited = map[string]bool{
	"audit":      true,
	"help":       true,
	"completion": true,
}

// shouldAudit reports whether the executed command gets an audit entry.
func shouldAudit(cmd *cobra.Command) bool {
	if os.Getenv(DisableAuditEnv) == "1" {
		return false
	}
	if !cmd.Runnable() || !cmd.HasParent() {
		return false
	}

	top := cmd
	for top.Parent().HasParent() {
		top = top.Parent()
	}
	return !unaudited[top.Name()]
}

// recordAudit writes a best-effort audit entry for the invocation. Errors
// opening the repository or saving the entry are logged and dropped.
func recordAudit(cmd *cobra.Command, runErr error, start time.Time) {
	logger := cmdutil.Logger(cmd.Context())

	repo, err := auditlog.Open()
	if err != nil {
		logger.Debug("audit log unavailable", zap.Error(err))
		return
	}
	defer repo.Close()

	meta := auditlog.MetadataFromContext(cmd.Context())
	entry := &auditlog.AuditEntry{
		Timestamp:    start.UTC(),
		Command:      cmd.CommandPath(),
		Flags:        auditlog.FlagNames(cmd.Flags()),
		Method:       meta.Method,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = cmdutil.Classify(runErr).Message
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}

	if err := repo.Save(entry); err != nil {
		logger.Debug("failed to save audit entry", zap.Error(err))
	}
}

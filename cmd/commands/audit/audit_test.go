package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/njalla/internal/auditlog"
	"nathanbeddoewebdev/njalla/internal/database"
	"nathanbeddoewebdev/njalla/internal/domain"
)

// seedAudit points the database at a temp file and stores entries in it.
func seedAudit(t *testing.T, entries ...auditlog.AuditEntry) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "njalla.db")
	database.SetPath(path)
	t.Cleanup(database.ResetPath)

	repo, err := auditlog.OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer repo.Close()
	for i := range entries {
		if err := repo.Save(&entries[i]); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func execAudit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return outBuf.String(), err
}

func TestList_Table(t *testing.T) {
	seedAudit(t, auditlog.AuditEntry{
		Command:      "njalla record remove",
		Method:       "remove-record",
		ResourceType: "record",
		ResourceID:   "42",
		ResourceName: "example.com",
		Outcome:      auditlog.OutcomeSuccess,
		DurationMs:   1500,
	})

	stdout, err := execAudit(t, "list")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"njalla record remove", "remove-record", "record:42 (example.com)", "1.5s"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestList_JSONFilteredByCommand(t *testing.T) {
	seedAudit(t,
		auditlog.AuditEntry{Command: "njalla domain list", Outcome: auditlog.OutcomeSuccess},
		auditlog.AuditEntry{Command: "njalla server stop", Outcome: auditlog.OutcomeError, Detail: "Server not found"},
	)

	stdout, err := execAudit(t, "list", "--format", "json", "--command", "njalla server stop")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got []auditlog.AuditEntry
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].Detail != "Server not found" {
		t.Errorf("unexpected entries %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	seedAudit(t)

	stdout, err := execAudit(t, "list")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "No audit entries found.") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestList_BadLimit(t *testing.T) {
	seedAudit(t)

	_, err := execAudit(t, "list", "--limit", "0")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPrune(t *testing.T) {
	seedAudit(t,
		auditlog.AuditEntry{Command: "njalla domain list", Outcome: auditlog.OutcomeSuccess, Timestamp: time.Now().UTC().Add(-48 * time.Hour)},
		auditlog.AuditEntry{Command: "njalla domain get", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, err := execAudit(t, "prune", "--older-than", "1d")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "Removed 1 audit entry.") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"72h", 72 * time.Hour, false},
		{"xd", 0, true},
		{"-1h", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

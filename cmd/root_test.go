package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	"nathanbeddoewebdev/njalla/internal/auditlog"
	"nathanbeddoewebdev/njalla/internal/config"
	"nathanbeddoewebdev/njalla/internal/database"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/rpc/rpctest"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// isolate points config and the audit database at temp files and routes
// RPC calls through stub.
func isolate(t *testing.T, stub *rpctest.Stub) string {
	t.Helper()
	dir := t.TempDir()

	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)

	dbPath := filepath.Join(dir, "njalla.db")
	database.SetPath(dbPath)
	t.Cleanup(database.ResetPath)

	cmdutil.SetCallerFactory(func(*cobra.Command) (rpc.Caller, error) { return stub, nil })
	t.Cleanup(cmdutil.ResetCallerFactory)

	t.Setenv(DisableAuditEnv, "")
	return dbPath
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var outBuf, errBuf bytes.Buffer
	code = run(args, &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func auditEntries(t *testing.T, path string) []auditlog.AuditEntry {
	t.Helper()
	repo, err := auditlog.OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer repo.Close()
	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	return entries
}

func TestRun_SuccessPrintsJSONAndAudits(t *testing.T) {
	dbPath := isolate(t, rpctest.NewStub().RespondRaw(rpc.MethodRemoveRecord, `{}`))

	code, stdout, stderr := runArgs("record", "remove", "example.com", "42")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !json.Valid([]byte(stdout)) {
		t.Errorf("stdout is not JSON: %q", stdout)
	}

	entries := auditEntries(t, dbPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	got := entries[0]
	want := auditlog.AuditEntry{
		Command:      "njalla record remove",
		Method:       "remove-record",
		ResourceType: "record",
		ResourceID:   "42",
		ResourceName: "example.com",
		Outcome:      auditlog.OutcomeSuccess,
	}
	got.ID, got.Timestamp, got.DurationMs = 0, want.Timestamp, 0
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("audit entry mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_APIErrorRendersJSON(t *testing.T) {
	dbPath := isolate(t, rpctest.NewStub().Fail(rpc.MethodGetDomain,
		&rpc.APIError{Method: rpc.MethodGetDomain, Code: "404", Message: "Domain not found"}))

	code, stdout, stderr := runArgs("domain", "get", "missing.com")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}

	var body struct {
		Error cmdutil.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal([]byte(stderr), &body); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, stderr)
	}
	want := cmdutil.ErrorBody{Kind: cmdutil.KindAPI, Code: "404", Message: "Domain not found"}
	if diff := cmp.Diff(want, body.Error); diff != "" {
		t.Errorf("error body mismatch (-want +got):\n%s", diff)
	}

	entries := auditEntries(t, dbPath)
	if len(entries) != 1 || entries[0].Outcome != auditlog.OutcomeError || entries[0].Detail != "Domain not found" {
		t.Errorf("unexpected audit entries %+v", entries)
	}
}

func TestRun_FlagErrorIsInvalidInput(t *testing.T) {
	isolate(t, rpctest.NewStub())

	code, _, stderr := runArgs("record", "list", "example.com", "--bogus")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, `"kind":"invalid_input"`) {
		t.Errorf("expected invalid_input error, got %s", stderr)
	}
}

func TestRun_UnknownFormatFailsBeforeAnyCall(t *testing.T) {
	stub := rpctest.NewStub().RespondRaw(rpc.MethodRemoveServer, `{"id":"1"}`)
	isolate(t, stub)

	code, stdout, stderr := runArgs("server", "remove", "1", "--yes", "--format", "xml")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, `"kind":"invalid_input"`) {
		t.Errorf("expected invalid_input error, got %s", stderr)
	}
	if n := len(stub.Calls()); n != 0 {
		t.Errorf("expected no calls, got %d", n)
	}
}

func TestRun_AuditKeepsFlagNamesOnly(t *testing.T) {
	tests := []struct {
		name      string
		stub      *rpctest.Stub
		args      []string
		wantFlags string
		secret    string
	}{
		{
			name:      "ssh key",
			stub:      rpctest.NewStub(),
			args:      []string{"server", "add", "web-1", "-t", "njalla1", "-o", "debian12", "-s", "not-a-key"},
			wantFlags: "--os --ssh-key --type",
			secret:    "not-a-key",
		},
		{
			name: "record content",
			stub: rpctest.NewStub().RespondRaw(rpc.MethodAddRecord,
				`{"id":7,"name":"www","type":"TXT","content":"secret-verification-token","ttl":3600}`),
			args:      []string{"record", "add", "example.com", "-t", "TXT", "-n", "www", "-c", "secret-verification-token"},
			wantFlags: "--content --name --type",
			secret:    "secret-verification-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := isolate(t, tt.stub)
			runArgs(tt.args...)

			entries := auditEntries(t, dbPath)
			if len(entries) != 1 {
				t.Fatalf("expected 1 audit entry, got %d", len(entries))
			}
			got := entries[0]
			if got.Flags != tt.wantFlags {
				t.Errorf("Flags = %q, want %q", got.Flags, tt.wantFlags)
			}
			for _, field := range []string{got.Flags, got.ResourceID, got.ResourceName} {
				if strings.Contains(field, tt.secret) {
					t.Errorf("%q leaked into audit entry %+v", tt.secret, got)
				}
			}
		})
	}
}

func TestRun_AuditDisabled(t *testing.T) {
	dbPath := isolate(t, rpctest.NewStub().RespondRaw(rpc.MethodListDomains, `{"domains":[]}`))
	t.Setenv(DisableAuditEnv, "1")

	if code, _, stderr := runArgs("domain", "list"); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if entries := auditEntries(t, dbPath); len(entries) != 0 {
		t.Errorf("expected no audit entries, got %d", len(entries))
	}
}

func TestShouldAudit(t *testing.T) {
	root := rootCmd(&session{})
	t.Setenv(DisableAuditEnv, "")

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"domain", "list"}, true},
		{[]string{"audit", "list"}, false},
		{[]string{"domain"}, false},
	}
	for _, tt := range tests {
		found, _, err := root.Find(tt.args)
		if err != nil {
			t.Fatalf("Find(%v) failed: %v", tt.args, err)
		}
		if got := shouldAudit(found); got != tt.want {
			t.Errorf("shouldAudit(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	dnsdomain "nathanbeddoewebdev/njalla/internal/dns/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"
	"nathanbeddoewebdev/njalla/internal/rpc/rpctest"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func useStub(t *testing.T, stub *rpctest.Stub) {
	t.Helper()
	cmdutil.SetCallerFactory(func(*cobra.Command) (rpc.Caller, error) { return stub, nil })
	t.Cleanup(cmdutil.ResetCallerFactory)
}

// execRecord runs the given record subcommand args and returns stdout and the error.
func execRecord(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	return outBuf.String(), err
}

const listResult = `{"records":[
	{"id":1,"name":"@","type":"A","content":"1.2.3.4","ttl":3600},
	{"id":2,"name":"@","type":"MX","content":"mail.example.com","ttl":3600,"prio":10},
	{"id":3,"name":"www","type":"A","content":"1.2.3.5","ttl":300}
]}`

func TestList_FiltersByType(t *testing.T) {
	useStub(t, rpctest.NewStub().RespondRaw(rpc.MethodListRecords, listResult))

	stdout, err := execRecord(t, "list", "example.com", "--type", "a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got []dnsdomain.Record
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	var ids []dnsdomain.RecordID
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]dnsdomain.RecordID{"1", "3"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	useStub(t, rpctest.NewStub().RespondRaw(rpc.MethodListRecords, listResult))

	stdout, err := execRecord(t, "get", "example.com", "2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got dnsdomain.Record
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if got.ID != "2" || got.Type != "MX" || got.Content != "mail.example.com" {
		t.Errorf("unexpected record %+v", got)
	}
}

func TestGet_UnknownIDIsNotFound(t *testing.T) {
	useStub(t, rpctest.NewStub().RespondRaw(rpc.MethodListRecords, listResult))

	_, err := execRecord(t, "get", "example.com", "99")
	if kind := cmdutil.Classify(err).Kind; kind != cmdutil.KindNotFound {
		t.Errorf("kind = %q, want %q", kind, cmdutil.KindNotFound)
	}
}

func TestAdd_SendsFlags(t *testing.T) {
	stub := rpctest.NewStub().Handle(rpc.MethodAddRecord, func(params json.RawMessage) (any, error) {
		var p map[string]any
		_ = json.Unmarshal(params, &p)
		p["id"] = 42
		return p, nil
	})
	useStub(t, stub)

	stdout, err := execRecord(t, "add", "example.com", "-n", "mail", "-t", "mx", "-c", "mx.example.com", "-p", "5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := map[string]any{
		"domain":  "example.com",
		"name":    "mail",
		"type":    "MX",
		"content": "mx.example.com",
		"ttl":     float64(3600),
		"prio":    float64(5),
	}
	if diff := cmp.Diff(want, stub.Calls()[0].ParamsMap()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, `"id": "42"`) {
		t.Errorf("expected created record in output, got:\n%s", stdout)
	}
}

func TestAdd_NoPriorityFlagSendsNoPriority(t *testing.T) {
	stub := rpctest.NewStub().RespondRaw(rpc.MethodAddRecord, `{"id":7,"name":"@","type":"A","content":"1.2.3.4","ttl":3600}`)
	useStub(t, stub)

	if _, err := execRecord(t, "add", "example.com", "-t", "A", "-c", "1.2.3.4"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := stub.Calls()[0].ParamsMap()["prio"]; ok {
		t.Error("expected no prio param")
	}
}

func TestAdd_UnsupportedTypeMakesNoCall(t *testing.T) {
	stub := rpctest.NewStub()
	useStub(t, stub)

	_, err := execRecord(t, "add", "example.com", "-t", "BOGUS", "-c", "x")
	if !errors.Is(err, dnsdomain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if n := len(stub.Calls()); n != 0 {
		t.Errorf("expected no calls, got %d", n)
	}
}

func TestEdit_OnlyChangedFlagsArePatched(t *testing.T) {
	stub := rpctest.NewStub().
		RespondRaw(rpc.MethodListRecords, listResult).
		RespondRaw(rpc.MethodEditRecord, `{}`)
	useStub(t, stub)

	stdout, err := execRecord(t, "edit", "example.com", "2", "-c", "mx2.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	edits := stub.CallsTo(rpc.MethodEditRecord)
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit call, got %d", len(edits))
	}
	want := map[string]any{
		"domain":  "example.com",
		"id":      float64(2),
		"name":    "@",
		"type":    "MX",
		"content": "mx2.example.com",
		"ttl":     float64(3600),
		"prio":    float64(10),
	}
	if diff := cmp.Diff(want, edits[0].ParamsMap()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, "mx2.example.com") {
		t.Errorf("expected merged record in output, got:\n%s", stdout)
	}
}

func TestEdit_UnknownIDSubmitsNothing(t *testing.T) {
	stub := rpctest.NewStub().RespondRaw(rpc.MethodListRecords, listResult)
	useStub(t, stub)

	_, err := execRecord(t, "edit", "example.com", "99", "--ttl", "60")
	if !errors.Is(err, dnsdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n := len(stub.CallsTo(rpc.MethodEditRecord)); n != 0 {
		t.Errorf("expected no edit calls, got %d", n)
	}
	if kind := cmdutil.Classify(err).Kind; kind != cmdutil.KindNotFound {
		t.Errorf("kind = %q, want %q", kind, cmdutil.KindNotFound)
	}
}

func TestRemove(t *testing.T) {
	stub := rpctest.NewStub().RespondRaw(rpc.MethodRemoveRecord, `{}`)
	useStub(t, stub)

	stdout, err := execRecord(t, "remove", "example.com", "3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := map[string]any{"domain": "example.com", "id": "3"}
	if diff := cmp.Diff(want, stub.Calls()[0].ParamsMap()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	var got removal
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if !got.Removed || got.ID != "3" {
		t.Errorf("unexpected output %+v", got)
	}
}

func TestRemove_NotFoundSurfaced(t *testing.T) {
	useStub(t, rpctest.NewStub().Fail(rpc.MethodRemoveRecord,
		&rpc.APIError{Method: rpc.MethodRemoveRecord, Code: "404", Message: "Record not found"}))

	_, err := execRecord(t, "remove", "example.com", "3")
	if !errors.Is(err, dnsdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if body := cmdutil.Classify(err); body.Kind != cmdutil.KindAPI || body.Message != "Record not found" {
		t.Errorf("unexpected error body %+v", body)
	}
}

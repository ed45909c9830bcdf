package auditlog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func recordFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.StringP("name", "n", "@", "")
	fs.StringP("type", "t", "", "")
	fs.StringP("content", "c", "", "")
	fs.Int("ttl", 3600, "")
	fs.String("token", "", "")
	fs.StringP("ssh-key", "s", "", "")
	return fs
}

func TestFlagNames(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "record content and name",
			args: []string{"example.com", "-t", "TXT", "-n", "www", "-c", "secret-verification-token"},
			want: "--content --name --type",
		},
		{
			name: "inline token",
			args: []string{"--token=abc123"},
			want: "--token",
		},
		{
			name: "short ssh key flag",
			args: []string{"s1", "-s", "~/.ssh/id.pub"},
			want: "--ssh-key",
		},
		{
			name: "defaults are not listed",
			args: []string{"example.com"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := recordFlags()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got := FlagNames(fs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FlagNames mismatch (-want +got):\n%s", diff)
			}
			for _, arg := range tt.args {
				if !strings.HasPrefix(arg, "-") && strings.Contains(got, arg) {
					t.Errorf("value %q leaked into %q", arg, got)
				}
			}
		})
	}
}

func TestFlagNames_NilFlagSet(t *testing.T) {
	if got := FlagNames(nil); got != "" {
		t.Errorf("FlagNames(nil) = %q, want empty", got)
	}
}

func TestWithMetadata_MergesLayers(t *testing.T) {
	ctx := WithMetadata(context.Background(), Metadata{ResourceType: "record", ResourceName: "example.com"})
	ctx = WithMetadata(ctx, Metadata{Method: "edit-record", ResourceID: "42"})

	want := Metadata{Method: "edit-record", ResourceType: "record", ResourceID: "42", ResourceName: "example.com"}
	if diff := cmp.Diff(want, MetadataFromContext(ctx)); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
}

package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/njalla/internal/config"
	"nathanbeddoewebdev/njalla/internal/domain"
)

// setupTestConfig points the config package at a temp file.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns stdout and the error.
func execConfig(t *testing.T, args ...string) (string, error) {
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

func TestGet_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, err := execConfig(t, "get", "timeout")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Timeout: "45s"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, err := execConfig(t, "get", "--key", "TIMEOUT")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.TrimSpace(stdout) != "45s" {
		t.Errorf("expected '45s', got: %s", stdout)
	}
}

func TestGet_AllKeys(t *testing.T) {
	setupTestConfig(t)

	stdout, err := execConfig(t, "get")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, name := range config.KeyNames() {
		if !strings.Contains(stdout, name+": (not set)") {
			t.Errorf("expected %q listed, got:\n%s", name, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, err := execConfig(t, "get", "bogus-key")
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestSet_PersistsValue(t *testing.T) {
	setupTestConfig(t)

	stdout, err := execConfig(t, "set", "endpoint", "https://api.example.test/1/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, `"https://api.example.test/1/"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Endpoint != "https://api.example.test/1/" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestSet_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"endpoint", "not a url"},
		{"endpoint", "ftp://example.com"},
		{"timeout", "soon"},
		{"timeout", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setupTestConfig(t)

			_, err := execConfig(t, "set", tt.key, tt.value)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			cfg, _ := config.Load()
			if got := config.Lookup(tt.key).Get(cfg); got != "" {
				t.Errorf("expected nothing stored, got %q", got)
			}
		})
	}
}

func TestSet_EmptyValueUnsets(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{Timeout: "10s"}).SaveTo(path); err != nil {
		t.Fatal(err)
	}

	if _, err := execConfig(t, "set", "timeout", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg, _ := config.Load()
	if cfg.Timeout != "" {
		t.Errorf("Timeout = %q, want empty", cfg.Timeout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, err := execConfig(t, "set", "bogus-key", "value")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDotenv(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestResolve_Precedence(t *testing.T) {
	work, cfgDir := t.TempDir(), t.TempDir()
	writeDotenv(t, work, "NJALLA_API_TOKEN=from-workdir\n")
	writeDotenv(t, cfgDir, "NJALLA_API_TOKEN=from-config\n")
	store := NewMockStore()
	_ = store.SetToken("from-keychain")

	r := &Resolver{
		Getenv:    env(map[string]string{EnvVar: "from-env"}),
		WorkDir:   work,
		ConfigDir: cfgDir,
		Store:     store,
	}

	got, err := r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Token != "from-env" || got.Source != SourceEnv {
		t.Errorf("got %+v, want env token", got)
	}

	r.Getenv = env(nil)
	got, err = r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Token != "from-workdir" || got.Source != SourceDotenv {
		t.Errorf("got %+v, want working directory .env token", got)
	}
	if got.Path != filepath.Join(work, ".env") {
		t.Errorf("Path = %q, want %q", got.Path, filepath.Join(work, ".env"))
	}

	r.WorkDir = t.TempDir()
	got, err = r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Token != "from-config" || got.Source != SourceConfigEnv {
		t.Errorf("got %+v, want config directory .env token", got)
	}

	r.ConfigDir = t.TempDir()
	got, err = r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Token != "from-keychain" || got.Source != SourceKeychain {
		t.Errorf("got %+v, want keychain token", got)
	}
}

func TestResolve_BlankValuesFallThrough(t *testing.T) {
	work := t.TempDir()
	writeDotenv(t, work, "# comment\nOTHER=1\nNJALLA_API_TOKEN=\n")
	store := NewMockStore()
	_ = store.SetToken("kc")

	r := &Resolver{
		Getenv:  env(map[string]string{EnvVar: "   "}),
		WorkDir: work,
		Store:   store,
	}

	got, err := r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Source != SourceKeychain {
		t.Errorf("Source = %q, want %q", got.Source, SourceKeychain)
	}
}

func TestResolve_DotenvSyntax(t *testing.T) {
	work := t.TempDir()
	writeDotenv(t, work, "# token\nNJALLA_API_TOKEN=\"quoted-token\"\n")

	r := &Resolver{Getenv: env(nil), WorkDir: work}

	got, err := r.Resolve()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Token != "quoted-token" {
		t.Errorf("Token = %q, want %q", got.Token, "quoted-token")
	}
}

func TestResolve_NothingFound(t *testing.T) {
	r := &Resolver{Getenv: env(nil), WorkDir: t.TempDir(), ConfigDir: t.TempDir(), Store: NewMockStore()}

	if _, err := r.Resolve(); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestResolve_KeychainFailureIsTokenNotFound(t *testing.T) {
	store := NewMockStore()
	store.Err = errors.New("dbus: no session bus")

	r := &Resolver{Getenv: env(nil), WorkDir: t.TempDir(), Store: store}

	_, err := r.Resolve()
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no session bus") {
		t.Errorf("expected keychain cause in message, got %q", err.Error())
	}
}

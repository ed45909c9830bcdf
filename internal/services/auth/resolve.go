package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"nathanbeddoewebdev/njalla/internal/config"
)

// EnvVar is the environment variable, and dotenv key, holding the token.
const EnvVar = "NJALLA_API_TOKEN"

const dotenvFile = ".env"

// Source names where a resolved token came from.
type Source string

const (
	SourceEnv       Source = "env"
	SourceDotenv    Source = "dotenv"
	SourceConfigEnv Source = "config-dotenv"
	SourceKeychain  Source = "keychain"
)

// Resolution is a resolved token and its origin.
type Resolution struct {
	Token  string `json:"-"`
	Source Source `json:"source"`

	// Path is the dotenv file the token was read from, if any.
	Path string `json:"path,omitempty"`
}

// Resolver looks the token up in a fixed order: the environment, ./.env,
// the .env file in the config directory, then the keychain. The first
// non-empty value wins.
type Resolver struct {
	Getenv    func(string) string
	WorkDir   string
	ConfigDir string
	Store     Store
}

// DefaultResolver returns a Resolver over the real process environment,
// working directory, config directory and keychain.
func DefaultResolver() *Resolver {
	r := &Resolver{
		Getenv:  os.Getenv,
		WorkDir: ".",
		Store:   DefaultStore(),
	}
	if dir, err := config.Dir(); err == nil {
		r.ConfigDir = dir
	}
	return r
}

// Resolve returns the first token found. It returns ErrTokenNotFound when
// no source has one.
func (r *Resolver) Resolve() (*Resolution, error) {
	if r.Getenv != nil {
		if token := strings.TrimSpace(r.Getenv(EnvVar)); token != "" {
			return &Resolution{Token: token, Source: SourceEnv}, nil
		}
	}

	dotenvs := []struct {
		dir    string
		source Source
	}{
		{r.WorkDir, SourceDotenv},
		{r.ConfigDir, SourceConfigEnv},
	}
	for _, d := range dotenvs {
		if d.dir == "" {
			continue
		}
		path := filepath.Join(d.dir, dotenvFile)
		token, err := readDotenv(path)
		if err != nil {
			return nil, err
		}
		if token != "" {
			return &Resolution{Token: token, Source: d.source, Path: path}, nil
		}
	}

	if r.Store == nil {
		return nil, ErrTokenNotFound
	}
	token, err := r.Store.GetToken()
	switch {
	case err == nil && strings.TrimSpace(token) != "":
		return &Resolution{Token: strings.TrimSpace(token), Source: SourceKeychain}, nil
	case err == nil, errors.Is(err, ErrTokenNotFound):
		return nil, ErrTokenNotFound
	default:
		// A missing or locked keychain is common on headless hosts.
		return nil, fmt.Errorf("%w (keychain unavailable: %v)", ErrTokenNotFound, err)
	}
}

// readDotenv returns the token from a dotenv file, or "" when the file does
// not exist or has no token entry.
func readDotenv(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("auth: failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(v.GetString(EnvVar)), nil
}

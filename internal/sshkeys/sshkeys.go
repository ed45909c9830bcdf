// Package sshkeys resolves and validates the SSH public keys installed on
// new or reset servers.
package sshkeys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ExpandHomePath expands a leading ~/ to the user's home directory.
func ExpandHomePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

// Resolve turns user input into a validated public key. The input is
// either the key itself ("ssh-ed25519 AAAA... comment") or a path to a
// public key file.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("SSH key cannot be empty")
	}

	if looksLikeKey(input) {
		return ValidatePublicKey(input)
	}

	path, err := ExpandHomePath(input)
	if err != nil {
		return "", err
	}
	return ReadAndValidatePublicKey(path)
}

// ReadAndValidatePublicKey reads a public key from disk and validates it.
func ReadAndValidatePublicKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read SSH key file: %w", err)
	}

	publicKey := strings.TrimSpace(string(data))
	if publicKey == "" {
		return "", fmt.Errorf("SSH key file is empty")
	}

	return ValidatePublicKey(publicKey)
}

// ValidatePublicKey checks that publicKey is a single OpenSSH
// authorized_keys line and returns it trimmed.
func ValidatePublicKey(publicKey string) (string, error) {
	publicKey = strings.TrimSpace(publicKey)
	if publicKey == "" {
		return "", fmt.Errorf("SSH key cannot be empty")
	}

	if strings.Contains(publicKey, "PRIVATE KEY") {
		return "", fmt.Errorf("input appears to contain a private key; please provide the public key (.pub file)")
	}

	if _, _, _, rest, err := ssh.ParseAuthorizedKey([]byte(publicKey)); err != nil {
		return "", fmt.Errorf("not a valid SSH public key: %w", err)
	} else if len(strings.TrimSpace(string(rest))) > 0 {
		return "", fmt.Errorf("expected a single SSH public key, found more than one")
	}

	return publicKey, nil
}

var keyPrefixes = []string{"ssh-", "ecdsa-sha2-", "sk-ssh-", "sk-ecdsa-"}

func looksLikeKey(s string) bool {
	for _, prefix := range keyPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// KeyInfo summarises a public key.
type KeyInfo struct {
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint"`
	Comment     string `json:"comment,omitempty"`
}

// Describe parses a validated public key and returns its type, SHA256
// fingerprint and comment.
func Describe(publicKey string) (*KeyInfo, error) {
	key, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(publicKey))
	if err != nil {
		return nil, fmt.Errorf("not a valid SSH public key: %w", err)
	}
	return &KeyInfo{
		Type:        key.Type(),
		Fingerprint: ssh.FingerprintSHA256(key),
		Comment:     comment,
	}, nil
}

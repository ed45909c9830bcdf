package util

import "strings"

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDomain lowercases a domain name and strips surrounding space
// and any trailing root dot ("Example.COM." becomes "example.com").
func NormalizeDomain(s string) string {
	return strings.TrimRight(NormalizeKey(s), ".")
}

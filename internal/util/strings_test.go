package util

import "testing"

func TestNormalizeDomain(t *testing.T) {
	cases := map[string]string{
		"example.com":      "example.com",
		" Example.COM. ":   "example.com",
		"sub.Example.org.": "sub.example.org",
		".":                "",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizeDomain(in); got != want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", in, got, want)
		}
	}
}

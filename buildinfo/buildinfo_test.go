package buildinfo

import "testing"

func TestString(t *testing.T) {
	version, sha := Version, GitSHA
	defer func() { Version, GitSHA = version, sha }()

	tests := []struct {
		version  string
		sha      string
		expected string
	}{
		{"0.2.0", "", "0.2.0"},
		{"0.2.0", "abc", "0.2.0"},
		{"0.2.0", "0123456789abcdef", "0.2.0 (0123456)"},
	}
	for _, tt := range tests {
		Version, GitSHA = tt.version, tt.sha
		if got := String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

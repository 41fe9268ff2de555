package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		commit   string
		date     string
		contains string
		excludes string
	}{
		{name: "development build", commit: unset, date: unset, contains: "chartkit version 1.0.0 (", excludes: "commit:"},
		{name: "release build", commit: "0123456789abcdef", date: "2026-01-02T03:04:05Z", contains: "commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{name: "short commit", commit: "abc", date: "2026-01-02T03:04:05Z", contains: "commit: abc,"},
		{name: "commit without date", commit: "0123456789abcdef", date: unset, excludes: "commit:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := Version, Commit, Date
			t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
			Version, Commit, Date = "1.0.0", tt.commit, tt.date

			got := String()
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("String() = %q, want it not to contain %q", got, tt.excludes)
			}
			if Short() != "1.0.0" {
				t.Errorf("Short() = %q, want 1.0.0", Short())
			}
		})
	}
}

package buildinfo

import "testing"

func TestBanner(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	Version, Commit, Date = "v1.0.0", "abc123", "2024-01-01"

	want := "crates version v1.0.0\ncommit: abc123\nbuilt: 2024-01-01\n"
	if got := Banner("crates"); got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}

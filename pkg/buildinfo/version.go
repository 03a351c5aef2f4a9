// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/typable/crates/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/typable/crates/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/typable/crates/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/crates
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Banner returns the text printed by --version for the named program.
func Banner(name string) string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt: %s\n", name, Version, Commit, Date)
}

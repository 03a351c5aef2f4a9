// Package cli implements the crates command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/typable/crates/pkg/integrations/crates"
)

const (
	// appName is the application name used in help and version output.
	appName = "crates"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Fetcher looks up a crate by identifier.
// [crates.Client] is the production implementation.
type Fetcher interface {
	FetchCrate(ctx context.Context, id string) (*crates.Result, error)
}

// CLI holds shared state for the command.
type CLI struct {
	Logger  *log.Logger
	Fetcher Fetcher

	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI writing results to stdout and logs to stderr.
// The Fetcher defaults to a crates.io client.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(stderr, level),
		Fetcher: crates.NewClient(),
		stdout:  stdout,
		stderr:  stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

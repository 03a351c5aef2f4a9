package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/typable/crates/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	err := run(ctx, c, os.Args[1:])
	code := exitCode(err)
	if code == 1 {
		// Usage errors have already printed their usage line to stdout.
		cli.PrintError(os.Stderr, err)
	}
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, c *cli.CLI, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// exitCode maps the result of run to the process status. A missing id and
// an unknown crate both finish with a nil error and exit 0.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	default:
		return 1
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/typable/crates/pkg/report"
)

// lookup fetches req.ID and prints the report or the selected field.
func (c *CLI) lookup(ctx context.Context, req Request) error {
	if !req.HasID {
		_, err := fmt.Fprintln(c.stdout, usageShort)
		return err
	}

	logger := loggerFromContext(ctx)
	logger.Debug("Looking up crate", "id", req.ID, "field", req.Field)

	prog := newProgress(logger)
	spin := c.startSpinner(ctx, fmt.Sprintf("Fetching %s...", req.ID))
	result, err := c.Fetcher.FetchCrate(ctx, req.ID)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %s", req.ID))

	if !result.Found() {
		_, err := fmt.Fprintln(c.stdout, report.NotFound(req.ID))
		return err
	}
	_, err = fmt.Fprintln(c.stdout, report.Render(result.Crate, req.Field))
	return err
}

package cli

import (
	"context"
	"time"
)

// logHooks reports registry traffic through the logger carried by the
// request context. Everything is logged at debug level, so output only
// appears with --verbose.
type logHooks struct{}

func (logHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("HTTP response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}

// Package integrations provides the shared HTTP plumbing for package registry
// API clients.
//
// # Overview
//
// Registry clients live in subpackages and embed [Client]:
//
//   - [crates]: Rust crates.io
//
// # Client Pattern
//
//	client := crates.NewClient()
//	result, err := client.FetchCrate(ctx, "serde")
//
// [Client] handles:
//   - Default request headers (crates.io requires a User-Agent)
//   - Reading the whole response body and decoding it as JSON
//   - Reporting request events to [observability.HTTP]
//
// Each call issues exactly one GET request. Responses are not cached and
// failed requests are not retried; failures carry an error code
// ([errors.ErrCodeNetwork] or [errors.ErrCodeDecode]).
//
// [crates]: github.com/typable/crates/pkg/integrations/crates
// [errors.ErrCodeNetwork]: github.com/typable/crates/pkg/errors.ErrCodeNetwork
// [errors.ErrCodeDecode]: github.com/typable/crates/pkg/errors.ErrCodeDecode
// [observability.HTTP]: github.com/typable/crates/pkg/observability.HTTP
package integrations

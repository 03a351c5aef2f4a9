// Package pkg provides the libraries behind the crates command.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [integrations] - Shared HTTP plumbing for registry clients
//  2. [crates] - The crates.io API client and record types
//  3. [report] - Plain-text rendering of crate records
//  4. [errors] - Coded errors shared by the client and the CLI
//  5. [observability] - Hooks for tracing registry traffic
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// A lookup flows through the packages in one direction:
//
//	command line
//	     ↓
//	internal/cli (ParseArgs → Request)
//	     ↓
//	[crates] package (one GET /api/v1/crates/<id>)
//	     ↓
//	[report] package (full report or single field)
//	     ↓
//	stdout
//
// # Quick Start
//
//	client := crates.NewClient()
//	result, err := client.FetchCrate(ctx, "serde")
//	if err != nil {
//	    return err
//	}
//	if !result.Found() {
//	    fmt.Println(report.NotFound("serde"))
//	    return nil
//	}
//	fmt.Println(report.Render(result.Crate, report.FieldNone))
//
// [integrations]: github.com/typable/crates/pkg/integrations
// [crates]: github.com/typable/crates/pkg/integrations/crates
// [report]: github.com/typable/crates/pkg/report
// [errors]: github.com/typable/crates/pkg/errors
// [observability]: github.com/typable/crates/pkg/observability
// [buildinfo]: github.com/typable/crates/pkg/buildinfo
package pkg

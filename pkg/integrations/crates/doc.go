// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata from crates.io (https://crates.io),
// the Rust community's package registry.
//
// # Usage
//
//	client := crates.NewClient()
//
//	result, err := client.FetchCrate(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Found() {
//	    fmt.Println("no such crate")
//	    return
//	}
//	fmt.Println(result.Crate.Name, result.Crate.MaxVersion)
//
// # Crate
//
// [Client.FetchCrate] returns a [Result] whose [Crate] contains:
//
//   - Name, Description, Keywords
//   - MaxStableVersion, MaxVersion
//   - Homepage, Repository, Documentation: optional URLs (nil when unset)
//
// # Missing crates
//
// crates.io answers unknown names with an error document that has no
// "crate" key. That decodes to a Result with a nil Crate, not an error.
//
// # User-Agent
//
// The client includes a User-Agent header as requested by crates.io policy.
package crates

// Package report renders crate metadata as plain text.
//
// # Full report
//
// [Full] produces one line per field in a fixed order:
//
//	Name:           serde
//	Description:    A generic serialization/deserialization framework
//	Keywords:       serde, serialization, no_std
//	Stable Version: 1.0.193
//	Latest Version: 1.0.193
//	Homepage:       https://serde.rs
//	Repository:     https://github.com/serde-rs/serde
//	Documentation:  - - -
//
// Labels occupy a column of [LabelWidth] characters and values a column of
// [ValueWidth] characters, so every line of a report has trailing padding.
// Longer values overflow the column; they are never truncated. Newlines
// inside values become single spaces.
//
// # Single field
//
// [Value] returns one raw field with no label and no padding, for use in
// shell pipelines:
//
//	$ crates serde --latest
//	1.0.193
//
// Optional URL fields that the crate does not declare render as [Placeholder]
// in both modes.
package report

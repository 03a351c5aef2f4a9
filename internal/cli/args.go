package cli

import (
	"github.com/typable/crates/pkg/errors"
	"github.com/typable/crates/pkg/report"
)

const (
	// usageShort is printed when no crate identifier is given.
	usageShort = "Invalid arguments! Usage: crates <id>"

	// usageLong is printed when the selector is not recognized.
	usageLong = "Invalid arguments! Usage: crates <id> [--latest, --stable, --homepage, --repo, --doc]"
)

// selectors maps each accepted selector token to the field it prints.
var selectors = map[string]report.Field{
	"--latest":   report.FieldLatest,
	"--stable":   report.FieldStable,
	"--homepage": report.FieldHomepage,
	"--repo":     report.FieldRepository,
	"--doc":      report.FieldDocumentation,
}

// Request is a single lookup built from the command line.
type Request struct {
	ID    string       // crate identifier, valid only when HasID is set
	HasID bool         // false when no identifier was given
	Field report.Field // report.FieldNone for the full report
}

// ParseArgs interprets positional arguments (program name excluded).
//
// The first argument is the crate identifier and the optional second one a
// selector. Anything after the second argument is ignored. An unknown
// selector yields an [errors.ErrCodeInvalidArgument] error; a missing
// identifier is not an error and yields a Request with HasID unset.
func ParseArgs(args []string) (Request, error) {
	var req Request
	if len(args) == 0 {
		return req, nil
	}
	req.ID, req.HasID = args[0], true

	if len(args) > 1 {
		field, ok := selectors[args[1]]
		if !ok {
			return Request{}, errors.New(errors.ErrCodeInvalidArgument, "unknown selector %q", args[1])
		}
		req.Field = field
	}
	return req, nil
}

// globalOpts holds the options accepted ahead of the crate identifier.
type globalOpts struct {
	verbose bool
	help    bool
	version bool
}

// splitGlobal consumes leading global options and returns the rest.
// Scanning stops at the first argument that is not a global option, so
// selector-position tokens are always left for ParseArgs.
func splitGlobal(args []string) (globalOpts, []string) {
	var opts globalOpts
	for i, arg := range args {
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "-h", "--help":
			opts.help = true
		case "--version":
			opts.version = true
		default:
			return opts, args[i:]
		}
	}
	return opts, nil
}

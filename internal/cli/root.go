package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typable/crates/pkg/buildinfo"
	"github.com/typable/crates/pkg/observability"
)

// RootCommand creates the crates command.
//
// Cobra's flag parsing is disabled so that selector tokens such as --repo
// reach [ParseArgs] unchanged. Global options (--verbose, --help,
// --version) are recognized only ahead of the crate identifier. There are
// no subcommands: every first argument is a crate identifier.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [-v] <id> [--latest|--stable|--homepage|--repo|--doc]",
		Short: "Look up a crate on crates.io",
		Long: `Look up a crate on crates.io and print its metadata.

Without a selector, a report of the crate's name, description, keywords,
versions and links is printed. With a selector, only that value is printed.

Selectors:
  --latest     latest published version
  --stable     latest stable version
  --homepage   homepage URL
  --repo       repository URL
  --doc        documentation URL

Global options (before <id>):
  -v, --verbose   enable debug logging on stderr
  -h, --help      show this help
      --version   show build information`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, rest := splitGlobal(args)
			switch {
			case opts.help:
				return cmd.Help()
			case opts.version:
				_, err := fmt.Fprint(c.stdout, buildinfo.Banner(appName))
				return err
			}

			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			observability.SetHTTPHooks(logHooks{})

			req, err := ParseArgs(rest)
			if err != nil {
				c.Logger.Debug("Rejected arguments", "err", err)
				if _, werr := fmt.Fprintln(c.stdout, usageLong); werr != nil {
					return werr
				}
				return err
			}
			return c.lookup(ctx, req)
		},
	}

	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	return root
}

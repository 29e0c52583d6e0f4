// Package cli implements the cppcodegen command-line interface.
//
// The CLI wraps the manifest and emit packages for use from build scripts:
//
//   - generate: Render a manifest and write its output file
//   - watch: Keep a manifest's output up to date
//   - schema: Print the JSON Schema for manifest files
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context so subcommands share one configuration.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version. Typically
// called by the main package with values injected at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the cppcodegen CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cppcodegen",
		Short:        "cppcodegen generates C++ headers from manifests",
		Long:         `cppcodegen renders declarative YAML or TOML manifests into indented C++ source text.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cppcodegen %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newSchemaCmd())

	return root.ExecuteContext(ctx)
}

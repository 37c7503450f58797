// Package cli implements the dungeongen command-line interface.
//
// Commands:
//   - generate: build a dungeon and print it as text
//   - view: browse dungeons interactively in the terminal
//   - presets: list the built-in parameter presets
//
// Every command accepts --verbose (-v) for debug logging. The logger travels
// in the command context and is picked up by the generator.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "dungeongen",
		Short:        "Generate seeded 2D dungeon maps",
		Long:         `dungeongen builds grid dungeons from templated rooms, corridors, doors and features. The same parameters and seed always produce the same map.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dungeongen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newPresetsCmd())
	return root
}

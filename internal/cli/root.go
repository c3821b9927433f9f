// Package cli provides the Cobra command structure for logmigrate.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mikeyoung304/MAIS/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root logmigrate command with all subcommands.
// Invoking the bare command runs the migration over the built-in agent
// registry.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "logmigrate",
		Short: "Rewrite console logging in agent sources to structured logger calls",
		Long: `logmigrate is a one-shot source migration for the agent deploy tree.

It injects a structured logger declaration into each agent source file,
rewrites tagged console.log/error/warn call sites into logger.info/error/warn
calls, and lifts interpolated variables out of the message text into the
structured data object. Every pass is idempotent: running the tool twice
leaves the files unchanged after the first run.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addRunFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

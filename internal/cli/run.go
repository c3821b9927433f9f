package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikeyoung304/MAIS/internal/configloader"
	"github.com/mikeyoung304/MAIS/internal/logging"
	"github.com/mikeyoung304/MAIS/internal/ui/pretty"
	"github.com/mikeyoung304/MAIS/pkg/runner"
)

// ErrAgentsFailed is returned when one or more agents could not be
// processed and strict mode is on.
var ErrAgentsFailed = errors.New("agents failed")

// ErrConfigLoad is returned when the configuration could not be resolved.
var ErrConfigLoad = errors.New("failed to load configuration")

type runFlags struct {
	root   string
	dryRun bool
	strict bool
}

// newRunCommand is the explicit spelling of the bare invocation.
func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the logging migration over the agent sources",
		Long: `Run the full pass sequence over every configured agent source and
write the rewritten files back in place. Equivalent to invoking logmigrate
with no subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, flags)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.root, "root", "", "repository root to resolve agent paths against")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report substitutions without writing files")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when any agent fails")
}

func runMigration(cmd *cobra.Command, flags *runFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// CLI flags win over file and environment.
	if cmd.Flags().Changed("root") {
		cfg.Root = flags.root
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}

	// --debug wins over the configured level.
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	logger.Debug("configuration loaded",
		logging.FieldRoot, cfg.Root,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldStrict, cfg.Strict,
		logging.FieldAgentsTotal, len(cfg.Agents),
	)

	ctx = logging.WithLogger(ctx, logger)
	result, err := runner.New().Run(ctx, runner.FromConfig(cfg))
	if err != nil {
		return errors.Join(errors.New("migration run failed"), err)
	}

	logger.Debug("run complete",
		logging.FieldAgentsSucceeded, result.Stats.AgentsSucceeded,
		logging.FieldAgentsFailed, result.Stats.AgentsFailed,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldWarnings, result.Stats.Warnings,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	for _, outcome := range result.Outcomes {
		fmt.Fprint(out, styles.FormatOutcome(outcome))
	}
	styles.WriteSummary(out, result.Stats)

	if ExitCodeFromResult(result, cfg.Strict) != ExitSuccess {
		return ErrAgentsFailed
	}
	return nil
}

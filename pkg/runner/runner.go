package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mikeyoung304/MAIS/internal/logging"
	"github.com/mikeyoung304/MAIS/pkg/config"
	"github.com/mikeyoung304/MAIS/pkg/fsutil"
	"github.com/mikeyoung304/MAIS/pkg/langdetect"
	"github.com/mikeyoung304/MAIS/pkg/rewrite"
)

// Runner executes the migration for a list of agents, strictly one at a
// time. Each document's buffer is owned exclusively by the runner between
// read and write-back. The logger is resolved from the context; attach one
// with logging.WithLogger, otherwise the package default is used.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run processes every agent in listed order and returns the per-agent
// outcomes plus aggregate stats. Individual agent failures are recorded in
// the result, never returned as an error; only context cancellation aborts
// the run early.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}
	result.Stats.AgentsTotal = len(opts.Agents)

	for _, agent := range opts.Agents {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		outcome := r.processAgent(ctx, agent, opts)
		if outcome.Err != nil && errors.Is(outcome.Err, ctx.Err()) && ctx.Err() != nil {
			result.accumulate(outcome)
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		}
		result.accumulate(outcome)
	}

	return result, nil
}

// processAgent runs the full pass sequence for one agent and writes the
// result back if anything changed.
func (r *Runner) processAgent(ctx context.Context, agent config.Agent, opts Options) Outcome {
	outcome := Outcome{
		Agent: agent,
		Path:  filepath.Join(opts.Root, agent.SourcePath()),
	}

	logger := logging.FromContext(ctx).With(
		logging.FieldAgent, agent.Name,
		logging.FieldPath, outcome.Path,
	)
	logger.Debug("processing agent", logging.FieldPrefix, agent.Prefix)

	content, info, err := fsutil.ReadFile(ctx, outcome.Path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if !langdetect.IsScriptSource(outcome.Path, content) {
		outcome.LanguageMismatch = true
		logger.Warn("target does not look like a TypeScript source",
			logging.FieldLanguage, langdetect.Detect(outcome.Path, content))
	}

	doc := rewrite.NewDocument(outcome.Path, content)
	report, err := rewrite.NewEngine(agent.Prefix).Run(ctx, doc)
	outcome.Report = report
	if err != nil {
		outcome.Err = err
		return outcome
	}

	for _, warning := range report.Warnings {
		logger.Warn(warning)
	}
	for _, count := range report.Counts {
		logger.Debug("pass complete",
			logging.FieldPass, count.Pass,
			logging.FieldSubstitutions, count.Substitutions)
	}

	if !doc.Dirty() {
		logger.Debug("no changes")
		return outcome
	}
	if opts.DryRun {
		logger.Debug("dry run, not writing", logging.FieldSubstitutions, report.Total)
		return outcome
	}

	// Refuse to clobber a file that changed underneath the run.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Err = fmt.Errorf("check modified: %w", err)
		return outcome
	}
	if modified {
		outcome.Err = fmt.Errorf("%s: file modified during processing", outcome.Path)
		return outcome
	}

	if err := fsutil.WriteAtomic(ctx, outcome.Path, doc.Bytes(), info.Mode); err != nil {
		outcome.Err = fmt.Errorf("write back: %w", err)
		return outcome
	}
	outcome.Written = true
	logger.Debug("written", logging.FieldSubstitutions, report.Total)

	return outcome
}

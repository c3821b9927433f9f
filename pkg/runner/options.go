// Package runner orchestrates the migration over the fixed agent list: one
// document is read, transformed end-to-end, and written back before the next
// agent is considered. No agent's failure aborts the remaining agents.
package runner

import "github.com/mikeyoung304/MAIS/pkg/config"

// Options controls one migration run.
type Options struct {
	// Root is the repository root agent paths are resolved against.
	Root string

	// Agents is the ordered list of migration targets.
	Agents []config.Agent

	// DryRun transforms in memory and reports counts without writing
	// anything back.
	DryRun bool
}

// FromConfig builds runner options from a resolved configuration.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Root:   cfg.Root,
		Agents: cfg.Agents,
		DryRun: cfg.DryRun,
	}
}

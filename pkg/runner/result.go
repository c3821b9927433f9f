package runner

import (
	"github.com/mikeyoung304/MAIS/pkg/config"
	"github.com/mikeyoung304/MAIS/pkg/rewrite"
)

// Outcome is the result of processing one agent.
type Outcome struct {
	// Agent is the migration target this outcome belongs to.
	Agent config.Agent

	// Path is the resolved source file path.
	Path string

	// Report holds the per-pass substitution counts. Nil when the file
	// could not be read.
	Report *rewrite.Report

	// Written is true if the rewritten content was persisted.
	Written bool

	// LanguageMismatch is true when the file did not look like a
	// TypeScript/JavaScript source. The file is still processed; the
	// patterns are no-ops on unrecognized text.
	LanguageMismatch bool

	// Err is set when the agent could not be processed at all.
	Err error
}

// Failed reports whether the agent's processing failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	// AgentsTotal is the number of agents in the run.
	AgentsTotal int

	// AgentsSucceeded is the number of agents processed without error.
	AgentsSucceeded int

	// AgentsFailed is the number of agents that could not be processed.
	AgentsFailed int

	// FilesModified is the number of files written back.
	FilesModified int

	// SubstitutionsTotal is the number of substitutions across all passes
	// and agents.
	SubstitutionsTotal int

	// Warnings counts non-fatal diagnostics (missing anchors, language
	// mismatches).
	Warnings int
}

// Result is the overall run result, in agent order.
type Result struct {
	Outcomes []Outcome
	Stats    Stats
}

// HasFailures reports whether any agent failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.AgentsFailed > 0
}

// accumulate updates the aggregate stats with one outcome.
func (r *Result) accumulate(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)

	if outcome.Failed() {
		r.Stats.AgentsFailed++
		return
	}

	r.Stats.AgentsSucceeded++
	if outcome.Written {
		r.Stats.FilesModified++
	}
	if outcome.LanguageMismatch {
		r.Stats.Warnings++
	}
	if outcome.Report != nil {
		r.Stats.SubstitutionsTotal += outcome.Report.Total
		r.Stats.Warnings += len(outcome.Report.Warnings)
	}
}

// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldRoot   = "root"
	FieldConfig = "config"

	// Agent fields.
	FieldAgent    = "agent"
	FieldPrefix   = "prefix"
	FieldLanguage = "language"

	// Run fields.
	FieldDryRun        = "dry_run"
	FieldStrict        = "strict"
	FieldPass          = "pass"
	FieldSubstitutions = "substitutions"

	// Statistics fields.
	FieldAgentsTotal     = "agents_total"
	FieldAgentsSucceeded = "agents_succeeded"
	FieldAgentsFailed    = "agents_failed"
	FieldFilesModified   = "files_modified"
	FieldWarnings        = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

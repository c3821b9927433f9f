package cli

import (
	"errors"

	"github.com/mikeyoung304/MAIS/pkg/runner"
)

// Exit codes for logmigrate.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitAgentErrors indicates the run completed but agents failed, in
	// strict mode.
	ExitAgentErrors = 1

	// ExitConfigError indicates configuration loading errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrAgentsFailed):
		return ExitAgentErrors
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code based on result and strict
// mode. Without strict mode agent failures are reported in text only and the
// process exits zero.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}
	if strict && result.HasFailures() {
		return ExitAgentErrors
	}
	return ExitSuccess
}

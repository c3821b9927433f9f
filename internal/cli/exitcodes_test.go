package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mikeyoung304/MAIS/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"agents failed", ErrAgentsFailed, ExitAgentErrors},
		{"wrapped agents failed", fmt.Errorf("run: %w", ErrAgentsFailed), ExitAgentErrors},
		{"config load error", errors.Join(ErrConfigLoad, errors.New("parse YAML")), ExitConfigError},
		{"unclassified error", errors.New("something broke"), ExitInternalError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	failed := &runner.Result{}
	failed.Stats.AgentsFailed = 1

	clean := &runner.Result{}
	clean.Stats.AgentsSucceeded = 5

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, true, ExitSuccess},
		{"failures without strict", failed, false, ExitSuccess},
		{"failures with strict", failed, true, ExitAgentErrors},
		{"clean run with strict", clean, true, ExitSuccess},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFromResult(tt.result, tt.strict); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}

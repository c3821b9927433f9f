// Package config defines the migration run configuration: the root of the
// source tree and the fixed registry of agents to process.
package config

import (
	"fmt"
	"path/filepath"
)

// agentSubpath is the location of an agent's source file relative to its
// deploy directory.
const agentSubpath = "src/agent.ts"

// deployDir is the agent deploy tree relative to the repository root.
const deployDir = "server/src/agent-v2/deploy"

// Agent identifies one migration target: a deploy directory name and the
// message tag its log lines carry.
type Agent struct {
	// Name is the deploy directory name, e.g. "concierge".
	Name string `yaml:"name"`

	// Prefix is the literal tag inside the agent's log messages, e.g.
	// "Concierge" for messages of the form "[Concierge] ...". The rewriter
	// only touches call sites carrying this tag.
	Prefix string `yaml:"prefix"`

	// Path optionally overrides the default source file location, relative
	// to the root.
	Path string `yaml:"path,omitempty"`
}

// SourcePath returns the agent's source file path relative to the root.
func (a Agent) SourcePath() string {
	if a.Path != "" {
		return a.Path
	}
	return filepath.Join(deployDir, a.Name, agentSubpath)
}

// Config holds the resolved configuration for one run.
type Config struct {
	// Root is the repository root the agent paths are resolved against.
	Root string `yaml:"root"`

	// Agents is the ordered list of migration targets.
	Agents []Agent `yaml:"agents"`

	// DryRun rewrites in memory and reports counts without writing files.
	DryRun bool `yaml:"dry_run"`

	// Strict makes the process exit non-zero when any agent fails. The
	// default mirrors the historical behavior: failures are reported only
	// via printed text.
	Strict bool `yaml:"strict"`

	// LogLevel controls diagnostic logging: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration: the five known agents in
// their fixed processing order.
func Default() *Config {
	return &Config{
		Root:     ".",
		LogLevel: "info",
		Agents: []Agent{
			{Name: "concierge", Prefix: "Concierge"},
			{Name: "storefront", Prefix: "StorefrontAgent"},
			{Name: "marketing", Prefix: "MarketingAgent"},
			{Name: "research", Prefix: "ResearchAgent"},
			{Name: "booking", Prefix: "BookingAgent"},
		},
	}
}

// Validate checks the configuration for holes that would make a run
// meaningless.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("config: root must not be empty")
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("config: no agents configured")
	}

	seen := make(map[string]bool, len(c.Agents))
	for i, agent := range c.Agents {
		if agent.Name == "" {
			return fmt.Errorf("config: agent %d has no name", i)
		}
		if agent.Prefix == "" {
			return fmt.Errorf("config: agent %q has no prefix", agent.Name)
		}
		if seen[agent.Name] {
			return fmt.Errorf("config: duplicate agent %q", agent.Name)
		}
		seen[agent.Name] = true
	}
	return nil
}

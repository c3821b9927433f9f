// Package configloader resolves the run configuration: built-in defaults,
// an optional project file discovered by upward search, environment
// variables, and CLI flags, in increasing precedence.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikeyoung304/MAIS/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, empty if none.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// fileConfig mirrors config.Config with pointer fields so that absent keys
// can be told apart from zero values when merging.
type fileConfig struct {
	Root     *string        `yaml:"root"`
	Agents   []config.Agent `yaml:"agents"`
	DryRun   *bool          `yaml:"dry_run"`
	Strict   *bool          `yaml:"strict"`
	LogLevel *string        `yaml:"log_level"`
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (LOGMIGRATE_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.logmigrate.yaml upward search)
//  4. Defaults (the built-in agent registry)
//
// CLI flags are applied by the caller on top of the returned config.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.Default()

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		merge(cfg, fileCfg)
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*fileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &fileConfig{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return cfg, nil
}

// merge applies the keys present in the file on top of the base config.
// An agents list in the file replaces the built-in registry entirely.
func merge(base *config.Config, file *fileConfig) {
	if file.Root != nil {
		base.Root = *file.Root
	}
	if len(file.Agents) > 0 {
		base.Agents = file.Agents
	}
	if file.DryRun != nil {
		base.DryRun = *file.DryRun
	}
	if file.Strict != nil {
		base.Strict = *file.Strict
	}
	if file.LogLevel != nil {
		base.LogLevel = *file.LogLevel
	}
}

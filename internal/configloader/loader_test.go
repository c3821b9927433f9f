package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Temp directory with no config files. t.TempDir is under the system
	// temp root, so the upward search cannot stray into a real project.
	tmpDir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	if len(result.Config.Agents) != 5 {
		t.Errorf("expected 5 built-in agents, got %d", len(result.Config.Agents))
	}
	if result.Config.Agents[0].Name != "concierge" {
		t.Errorf("expected first agent concierge, got %q", result.Config.Agents[0].Name)
	}
	if result.LoadedFrom != "" {
		t.Errorf("expected no loaded file, got %q", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
root: /srv/checkout
strict: true
log_level: debug
`
	configPath := filepath.Join(tmpDir, ".logmigrate.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Root != "/srv/checkout" {
		t.Errorf("expected root /srv/checkout, got %q", result.Config.Root)
	}
	if !result.Config.Strict {
		t.Error("expected strict to be true")
	}
	if result.Config.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", result.Config.LogLevel)
	}
	// Keys absent from the file keep their defaults.
	if len(result.Config.Agents) != 5 {
		t.Errorf("expected built-in agents to survive, got %d", len(result.Config.Agents))
	}
	if result.LoadedFrom != configPath {
		t.Errorf("expected LoadedFrom %q, got %q", configPath, result.LoadedFrom)
	}
}

func TestLoad_AgentsOverride(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
agents:
  - name: concierge
    prefix: Concierge
    path: custom/agent.ts
`
	if err := os.WriteFile(filepath.Join(tmpDir, ".logmigrate.yml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Config.Agents) != 1 {
		t.Fatalf("expected agents list to be replaced, got %d entries", len(result.Config.Agents))
	}
	if result.Config.Agents[0].SourcePath() != "custom/agent.ts" {
		t.Errorf("expected path override, got %q", result.Config.Agents[0].SourcePath())
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	customPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(customPath, []byte("dry_run: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	// A project config that must be skipped when --config is given.
	if err := os.WriteFile(filepath.Join(tmpDir, ".logmigrate.yaml"), []byte("strict: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   tmpDir,
		ExplicitPath: customPath,
		IgnoreEnv:    true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !result.Config.DryRun {
		t.Error("expected dry_run from explicit config")
	}
	if result.Config.Strict {
		t.Error("project config should be skipped when an explicit path is set")
	}
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: "does-not-exist.yaml",
		IgnoreEnv:    true,
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOGMIGRATE_ROOT", "/env/root")
	t.Setenv("LOGMIGRATE_STRICT", "true")
	t.Setenv("LOGMIGRATE_DRY_RUN", "1")
	t.Setenv("LOGMIGRATE_LOG_LEVEL", "warn")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Root != "/env/root" {
		t.Errorf("expected env root, got %q", result.Config.Root)
	}
	if !result.Config.Strict || !result.Config.DryRun {
		t.Error("expected strict and dry_run from environment")
	}
	if result.Config.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %q", result.Config.LogLevel)
	}
}

func TestLoad_EnvInvalidBool(t *testing.T) {
	t.Setenv("LOGMIGRATE_STRICT", "maybe")

	_, err := Load(context.Background(), LoadOptions{WorkingDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configContent := `
agents:
  - name: concierge
`
	if err := os.WriteFile(filepath.Join(tmpDir, ".logmigrate.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(context.Background(), LoadOptions{WorkingDir: tmpDir, IgnoreEnv: true})
	if err == nil {
		t.Fatal("expected validation error for agent without prefix")
	}
}

func TestFindProjectConfig_Upward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	configPath := filepath.Join(tmpDir, ".logmigrate.yaml")
	if err := os.WriteFile(configPath, []byte("strict: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != configPath {
		t.Errorf("expected %q, got %q", configPath, found)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// Config above the VCS root must not be found.
	if err := os.WriteFile(filepath.Join(tmpDir, ".logmigrate.yaml"), []byte("strict: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(repo, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != "" {
		t.Errorf("expected no config past VCS root, got %q", found)
	}
}

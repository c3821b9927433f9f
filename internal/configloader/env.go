package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mikeyoung304/MAIS/pkg/config"
)

// envVarPrefix is the prefix for all logmigrate environment variables.
const envVarPrefix = "LOGMIGRATE_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LOGMIGRATE_ (e.g. LOGMIGRATE_ROOT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "ROOT"); value != "" {
		cfg.Root = value
	}
	if value := os.Getenv(envVarPrefix + "LOG_LEVEL"); value != "" {
		cfg.LogLevel = value
	}
	if err := envBool(envVarPrefix+"DRY_RUN", &cfg.DryRun); err != nil {
		return err
	}
	if err := envBool(envVarPrefix+"STRICT", &cfg.Strict); err != nil {
		return err
	}
	return nil
}

// envBool parses a boolean environment variable into dest, leaving dest
// untouched when the variable is unset.
func envBool(envVar string, dest *bool) error {
	value := os.Getenv(envVar)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
	}
	*dest = parsed
	return nil
}

// ListEnvVars returns the supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"LOGMIGRATE_ROOT":      "Repository root to resolve agent paths against",
		"LOGMIGRATE_LOG_LEVEL": "Log level: debug, info, warn, or error",
		"LOGMIGRATE_DRY_RUN":   "Dry-run mode: true or false",
		"LOGMIGRATE_STRICT":    "Exit non-zero when any agent fails: true or false",
	}
}

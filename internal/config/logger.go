package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
	logOutputs = []string{"stdout", "stderr"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout or stderr.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate rejects values the logger builder would silently replace.
// An empty Output means stdout.
func (c LoggerConfig) Validate() error {
	if err := oneOf("LOG_LEVEL", c.Level, logLevels); err != nil {
		return err
	}
	if err := oneOf("LOG_FORMAT", c.Format, logFormats); err != nil {
		return err
	}
	if c.Output == "" {
		return nil
	}
	return oneOf("LOG_OUTPUT", c.Output, logOutputs)
}

// IsProduction reports whether the production zap preset applies:
// JSON output above debug level.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s: %q (must be: %s)", key, value, strings.Join(allowed, ", "))
}

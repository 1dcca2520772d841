package log

import (
	"os"
	"path/filepath"
	"strings"
)

// Config controls where and how the diagnostic log is written
type Config struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Format is text or json
	Format string `yaml:"format"`

	// File is the log destination. Empty disables logging; "-" writes to stderr.
	File string `yaml:"file"`

	AddSource bool `yaml:"add_source"`
}

// NewConfigFromEnv creates a configuration from GRIDOS_LOG_* variables
func NewConfigFromEnv() *Config {
	return &Config{
		Level:     getEnvWithDefault("GRIDOS_LOG_LEVEL", "info"),
		Format:    getEnvWithDefault("GRIDOS_LOG_FORMAT", "text"),
		File:      os.Getenv("GRIDOS_LOG_FILE"),
		AddSource: strings.EqualFold(os.Getenv("GRIDOS_LOG_SOURCE"), "true"),
	}
}

// DefaultFile returns $XDG_STATE_HOME/gridos/gridos.log, falling back to ~/.local/state
func DefaultFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "gridos.log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "gridos", "gridos.log")
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

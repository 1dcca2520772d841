package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kmacinski/gridos/internal/log"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Metrics MetricsConfig `yaml:"metrics"`
	Boot    BootConfig    `yaml:"boot"`
	Layout  LayoutConfig  `yaml:"layout"`
	Colors  ColorConfig   `yaml:"colors"`
	Log     log.Config    `yaml:"log"`
}

// GatewayConfig holds AI backend settings. The API key is normally taken from the environment.
type GatewayConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"` // 0 = wait indefinitely
	Context string        `yaml:"terminal_context"`
}

// MetricsConfig holds dashboard sampling settings
type MetricsConfig struct {
	Interval time.Duration `yaml:"interval"`
	History  int           `yaml:"history"`
}

// BootConfig holds boot animation settings
type BootConfig struct {
	Skip bool          `yaml:"skip"`
	Step int           `yaml:"step"`
	Tick time.Duration `yaml:"tick"`
	Hold time.Duration `yaml:"hold"`
}

// LayoutConfig holds desktop layout settings
type LayoutConfig struct {
	MinFloatingWidth  int `yaml:"min_floating_width"` // below this width only the focused window is drawn
	MinFloatingHeight int `yaml:"min_floating_height"`
	LogLimit          int `yaml:"log_limit"`
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Accent          string `yaml:"accent"`
	Secondary       string `yaml:"secondary"`
	Assistant       string `yaml:"assistant"`
	Error           string `yaml:"error"`
	Warn            string `yaml:"warn"`
	Text            string `yaml:"text"`
	Muted           string `yaml:"muted"`
	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
	Bar             string `yaml:"bar"`
	Desktop         string `yaml:"desktop"`
}

// ErrInvalid is returned by Load and Validate for values the desktop cannot run with
var ErrInvalid = errors.New("invalid config")

// Default returns the default configuration
var Default = Config{
	Gateway: GatewayConfig{
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-3-flash-preview",
		Context: "Current user is root. OS Version 2.5.0-Grid. This terminal supports Google Search Grounding for real-time queries.",
	},
	Metrics: MetricsConfig{
		Interval: 2 * time.Second,
		History:  30,
	},
	Boot: BootConfig{
		Step: 5,
		Tick: 100 * time.Millisecond,
		Hold: 800 * time.Millisecond,
	},
	Layout: LayoutConfig{
		MinFloatingWidth:  100,
		MinFloatingHeight: 28,
		LogLimit:          100,
	},
	Colors: ColorConfig{
		Accent:          "#10b981",
		Secondary:       "#3b82f6",
		Assistant:       "#a855f7",
		Error:           "#f87171",
		Warn:            "#eab308",
		Text:            "#e2e8f0",
		Muted:           "#64748b",
		BorderFocused:   "#10b981",
		BorderUnfocused: "#334155",
		Bar:             "#0f172a",
		Desktop:         "#020617",
	},
	Log: log.Config{
		Level:  "info",
		Format: "text",
	},
}

// DefaultPath returns $XDG_CONFIG_HOME/gridos/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridos", "config.yaml")
}

// Load returns Default overlaid with the YAML file at path and then the environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects timing and sizing values that would stall or spin the desktop loops
func (c Config) Validate() error {
	switch {
	case c.Boot.Step <= 0:
		return fmt.Errorf("%w: boot.step must be positive, got %d", ErrInvalid, c.Boot.Step)
	case c.Boot.Tick <= 0:
		return fmt.Errorf("%w: boot.tick must be positive, got %s", ErrInvalid, c.Boot.Tick)
	case c.Boot.Hold < 0:
		return fmt.Errorf("%w: boot.hold must not be negative, got %s", ErrInvalid, c.Boot.Hold)
	case c.Metrics.Interval <= 0:
		return fmt.Errorf("%w: metrics.interval must be positive, got %s", ErrInvalid, c.Metrics.Interval)
	case c.Metrics.History <= 0:
		return fmt.Errorf("%w: metrics.history must be positive, got %d", ErrInvalid, c.Metrics.History)
	case c.Gateway.Timeout < 0:
		return fmt.Errorf("%w: gateway.timeout must not be negative, got %s", ErrInvalid, c.Gateway.Timeout)
	}
	return nil
}

func applyEnv(cfg *Config) {
	for _, key := range []string{"GRIDOS_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v := os.Getenv(key); v != "" {
			cfg.Gateway.APIKey = v
			break
		}
	}
	if v := os.Getenv("GRIDOS_MODEL"); v != "" {
		cfg.Gateway.Model = v
	}
	if v := os.Getenv("GRIDOS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GRIDOS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

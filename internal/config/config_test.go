package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GRIDOS_API_KEY", "GEMINI_API_KEY", "API_KEY", "GRIDOS_MODEL", "GRIDOS_LOG_LEVEL", "GRIDOS_LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default, cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
gateway:
  model: other-model
  timeout: 30s
metrics:
  history: 10
colors:
  accent: "#ff0000"
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "other-model", cfg.Gateway.Model)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 10, cfg.Metrics.History)
	assert.Equal(t, 2*time.Second, cfg.Metrics.Interval, "unset keys keep defaults")
	assert.Equal(t, "#ff0000", cfg.Colors.Accent)
	assert.Equal(t, Default.Colors.Muted, cfg.Colors.Muted)
}

func TestLoad_EnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "from-gemini")
	t.Setenv("API_KEY", "from-generic")
	t.Setenv("GRIDOS_MODEL", "env-model")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "from-gemini", cfg.Gateway.APIKey)
	assert.Equal(t, "env-model", cfg.Gateway.Model)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway: [unterminated"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero boot step", "boot: {step: 0}", "boot.step"},
		{"negative boot step", "boot: {step: -5}", "boot.step"},
		{"zero boot tick", "boot: {tick: 0s}", "boot.tick"},
		{"negative boot hold", "boot: {hold: -1s}", "boot.hold"},
		{"zero metrics interval", "metrics: {interval: 0s}", "metrics.interval"},
		{"zero metrics history", "metrics: {history: 0}", "metrics.history"},
		{"negative gateway timeout", "gateway: {timeout: -1s}", "gateway.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)

			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_ZeroHoldAndTimeoutAreValid(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boot: {hold: 0s}\ngateway: {timeout: 0s}\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Zero(t, cfg.Boot.Hold)
	assert.Zero(t, cfg.Gateway.Timeout)
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default.Validate())
}

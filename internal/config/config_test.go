package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	flags.String("log-level", "info", "")
	flags.String("log-format", "json", "")
	flags.String("tie-break", "gpu", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, bottleneck.TieBreakGPU, cfg.TieBreak())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bottleneck.yaml")
	content := `
http:
  addr: ":9090"
  shutdown_timeout: 10s
log:
  level: debug
  format: console
calculator:
  tie_break: balanced
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, bottleneck.TieBreakBalanced, cfg.TieBreak())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bottleneck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("BOTTLENECK_ADDR", ":7070")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "https://key@sentry.example.com/1", cfg.Sentry.DSN)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BOTTLENECK_TIE_BREAK", "gpu")
	t.Setenv("BOTTLENECK_ADDR", ":7070")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--tie-break=balanced"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "balanced", cfg.Calculator.TieBreak)
	// Unset flags leave lower layers alone.
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"BOTTLENECK_TIE_BREAK":  "cpu",
		"BOTTLENECK_LOG_LEVEL":  "loud",
		"BOTTLENECK_LOG_FORMAT": "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/logger"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.True(t, cfg.RenderMarkers)
		assert.Equal(t, DefaultHeadCacheSize, cfg.HeadCacheSize)
		assert.Equal(t, DefaultHeadCacheTTL, cfg.HeadCacheTTL)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "test")
		t.Setenv(EnvRenderMarkers, "false")
		t.Setenv(EnvHeadCacheSize, "16")
		t.Setenv(EnvHeadCacheTTL, "90s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "test", cfg.Environment)
		assert.False(t, cfg.RenderMarkers)
		assert.Equal(t, 16, cfg.HeadCacheSize)
		assert.Equal(t, 90*time.Second, cfg.HeadCacheTTL)
	})

	t.Run("falls back to defaults for unparsable values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvHeadCacheSize, "lots")
		t.Setenv(EnvRenderMarkers, "maybe")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultHeadCacheSize, cfg.HeadCacheSize)
		assert.True(t, cfg.RenderMarkers)
	})

	t.Run("rejects invalid log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogFormat, "xml")

		_, err := Load()

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("rejects non-positive cache size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvHeadCacheSize, "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HeadCacheSize")
	})
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestWarnings(t *testing.T) {
	cfg := &Config{Environment: logger.EnvironmentProduction, RenderMarkers: false}
	assert.Len(t, Warnings(cfg), 1)

	cfg.RenderMarkers = true
	assert.Empty(t, Warnings(cfg))

	cfg = &Config{Environment: logger.EnvironmentDev, RenderMarkers: false}
	assert.Empty(t, Warnings(cfg), "only production warns about plain rendering")
}

// clearEnvVars resets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvRenderMarkers, EnvHeadCacheSize, EnvHeadCacheTTL, EnvTemplatePath,
	} {
		t.Setenv(key, "")
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("TOURDECK_DATA sets data path", func(t *testing.T) {
		t.Setenv("TOURDECK_DATA", "/tmp/tours.yaml")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/tours.yaml", cfg.DataPath)
	})

	t.Run("TOURDECK_THEME overrides file value", func(t *testing.T) {
		t.Setenv("TOURDECK_THEME", "dark")

		cfg := &Config{UI: UIConfig{Theme: "light"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("TOURDECK_DEBUG parses bools", func(t *testing.T) {
		t.Setenv("TOURDECK_DEBUG", "true")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)

		t.Setenv("TOURDECK_DEBUG", "0")
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Logging.DebugMode)
	})

	t.Run("TOURDECK_DEBUG ignores garbage", func(t *testing.T) {
		t.Setenv("TOURDECK_DEBUG", "maybe")
		cfg := DefaultConfig()
		cfg.Logging.DebugMode = true
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("empty vars change nothing", func(t *testing.T) {
		t.Setenv("TOURDECK_DATA", "")
		t.Setenv("TOURDECK_THEME", "")
		t.Setenv("TOURDECK_DEBUG", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestLoad_EnvInvalidTheme(t *testing.T) {
	t.Setenv("TOURDECK_THEME", "sepia")
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

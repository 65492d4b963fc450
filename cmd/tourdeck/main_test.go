package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourdeck/internal/catalog"
	"tourdeck/internal/config"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	logger = zap.NewNop()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func captured() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestDumpCatalog_BuiltIn(t *testing.T) {
	withConfig(t, config.DefaultConfig())
	cmd, out := captured()

	require.NoError(t, dumpCatalog(cmd, nil))

	back, err := catalog.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), back)
}

func TestValidateCatalog(t *testing.T) {
	withConfig(t, config.DefaultConfig())
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("tours:\n  - id: a\n    price: 1\n"), 0644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tours:\n  - id: a\n  - id: a\n"), 0644))

	t.Run("good file", func(t *testing.T) {
		cmd, out := captured()
		require.NoError(t, validateCatalog(cmd, []string{good}))
		assert.Contains(t, out.String(), "ok (1 tours, 0 reviews)")
	})

	t.Run("bad file", func(t *testing.T) {
		cmd, _ := captured()
		err := validateCatalog(cmd, []string{bad})
		require.Error(t, err)
		assert.True(t, catalog.IsValidationError(err))
	})

	t.Run("built-in", func(t *testing.T) {
		cmd, out := captured()
		require.NoError(t, validateCatalog(cmd, nil))
		assert.True(t, strings.HasPrefix(out.String(), "built-in catalog: ok"))
	})
}

func TestSetup_FlagOverrides(t *testing.T) {
	t.Setenv("TOURDECK_DATA", "")
	t.Setenv("TOURDECK_THEME", "")
	t.Setenv("TOURDECK_DEBUG", "")
	t.Chdir(t.TempDir())

	data := filepath.Join(t.TempDir(), "tours.yaml")
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&dataPath, "data", "", "")
	cmd.Flags().BoolVar(&watch, "watch", false, "")
	require.NoError(t, cmd.Flags().Set("data", data))
	require.NoError(t, cmd.Flags().Set("watch", "true"))
	t.Cleanup(func() { dataPath, watch, cfg = "", false, nil })

	require.NoError(t, setup(cmd))
	assert.Equal(t, data, cfg.DataPath)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.Logging.DebugMode)
}

func TestSetup_WatchNeedsData(t *testing.T) {
	t.Setenv("TOURDECK_DATA", "")
	t.Chdir(t.TempDir())

	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&watch, "watch", false, "")
	require.NoError(t, cmd.Flags().Set("watch", "true"))
	t.Cleanup(func() { watch = false })

	err := setup(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch requires data_path")
}

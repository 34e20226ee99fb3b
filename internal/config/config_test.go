package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HOUSEWRIGHT_CONFIG", "")
	for _, k := range []string{"HOUSEWRIGHT_DB", "HOUSEWRIGHT_CATALOG", "HOUSEWRIGHT_OUTPUT_DIR",
		"HOUSEWRIGHT_BLENDER", "HOUSEWRIGHT_BLENDER_SCRIPT", "HOUSEWRIGHT_RENDER_FORMAT",
		"HOUSEWRIGHT_RENDER_TIMEOUT_MS", "HOUSEWRIGHT_RENDER_MAX_RETRIES", "HOUSEWRIGHT_LOG_CALLS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".housewright", "housewright.db"), cfg.DBPath)
	assert.Equal(t, "blender", cfg.Render.Binary)
	assert.Equal(t, "glb", cfg.Render.Format)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.Source)
	assert.False(t, cfg.LogCalls)
}

func TestLoad_FileThenEnv(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".housewright")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
catalog_path: /etc/housewright/catalog.yaml
render:
  binary: /opt/blender/blender
  timeout_ms: 60000
`), 0o644))

	t.Setenv("HOUSEWRIGHT_RENDER_TIMEOUT_MS", "90000")
	t.Setenv("HOUSEWRIGHT_LOG_CALLS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Source)
	assert.Equal(t, "/etc/housewright/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "/opt/blender/blender", cfg.Render.Binary)
	assert.Equal(t, 90000, cfg.Render.TimeoutMs, "env wins over file")
	assert.Equal(t, 1, cfg.Render.MaxRetries, "untouched keys keep defaults")
	assert.True(t, cfg.LogCalls)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolateHome(t)
	t.Setenv("HOUSEWRIGHT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  format: gif\n  max_retries: -2\n"), 0o644))
	t.Setenv("HOUSEWRIGHT_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `render.format "gif"`)
	assert.Contains(t, err.Error(), "max_retries")
}

func TestLoad_BadYAML(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: [unclosed"), 0o644))
	t.Setenv("HOUSEWRIGHT_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestApplyEnv_IgnoresGarbage(t *testing.T) {
	isolateHome(t)
	t.Setenv("HOUSEWRIGHT_RENDER_MAX_RETRIES", "lots")
	t.Setenv("HOUSEWRIGHT_LOG_CALLS", "sometimes")

	cfg := Default("/home/u")
	cfg.applyEnv()
	assert.Equal(t, 1, cfg.Render.MaxRetries)
	assert.False(t, cfg.LogCalls)
}

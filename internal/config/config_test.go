package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable that can supply configuration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"LFM_API_KEY", "LFM_BASE_URL", "LFM_HISTORY_DB", "LFM_OUTPUT_WIDTH", "LFM_LIMIT"} {
		t.Setenv(name, "")
	}
	for _, name := range lastfm.APIKeyEnvNames {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := loadFrom(dir)
	require.NoError(t, err)

	assert.Empty(t, cfg.LastFM.APIKey)
	assert.Empty(t, cfg.LastFM.APIKeySource)
	assert.Equal(t, lastfm.DefaultBaseURL, cfg.LastFM.BaseURL)
	assert.Equal(t, 10, cfg.LastFM.Timeout)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, filepath.Join(dir, "history.db"), cfg.History.Path)
	assert.Equal(t, 90, cfg.History.MaxAge)
	assert.Equal(t, 0, cfg.Output.Width)
	assert.Equal(t, 10, cfg.Output.Limit)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := `lastfm:
  api_key: a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4
  timeout: 5
history:
  enabled: false
output:
  limit: 25
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := loadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4", cfg.LastFM.APIKey)
	assert.Equal(t, "config", cfg.LastFM.APIKeySource)
	assert.Equal(t, 5, cfg.LastFM.Timeout)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 25, cfg.Output.Limit)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("lastfm:\n  api_key: from-file\n"), 0600))

	t.Setenv("LFM_API_KEY", "from-env")
	t.Setenv("LFM_LIMIT", "3")
	t.Setenv("LFM_HISTORY_DB", "/tmp/lfm-history.db")

	cfg, err := loadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.LastFM.APIKey)
	assert.Equal(t, "LFM_API_KEY", cfg.LastFM.APIKeySource)
	assert.Equal(t, 3, cfg.Output.Limit)
	assert.Equal(t, "/tmp/lfm-history.db", cfg.History.Path)
}

func TestLoad_FallsBackToFrontendEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_LASTFM_API_KEY", "vite-key")

	cfg, err := loadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "vite-key", cfg.LastFM.APIKey)
	assert.Equal(t, "VITE_LASTFM_API_KEY", cfg.LastFM.APIKeySource)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("lastfm: [unclosed"), 0600))

	_, err := loadFrom(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := loadFrom(dir)
	require.NoError(t, err)

	cfg.LastFM.APIKey = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4"
	cfg.LastFM.APIKeySource = "config"
	cfg.Output.Width = 120
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	reloaded, err := loadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.LastFM.APIKey, reloaded.LastFM.APIKey)
	assert.Equal(t, 120, reloaded.Output.Width)
}

func TestSave_SkipsEnvKey(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("VITE_LASTFM_API_KEY", "vite-key")

	cfg, err := loadFrom(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "vite-key")
}

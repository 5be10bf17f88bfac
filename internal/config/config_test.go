package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 8, cfg.FetchConcurrency)
	assert.Equal(t, 8, cfg.LatestLimit)
	assert.Equal(t, "sqlite", cfg.SettingsBackend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.WatchSchedule)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DefaultSite(), cfg.Site)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITE_CONFIG", "")
	t.Setenv("READER_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("FETCH_CONCURRENCY", "0")
	t.Setenv("SETTINGS_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 1, cfg.FetchConcurrency)
	assert.Equal(t, "redis", cfg.SettingsBackend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadSite(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		site, err := LoadSite(filepath.Join(dir, "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultSite(), site)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(dir, "site.toml")
		content := `
name = "Test Scans"
kofi_url = "https://ko-fi.com/test"
disqus_shortname = "testscans"
about = ["one", "two"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		site, err := LoadSite(path)
		require.NoError(t, err)
		assert.Equal(t, "Test Scans", site.Name)
		assert.Equal(t, "https://ko-fi.com/test", site.KofiURL)
		assert.Equal(t, "testscans", site.DisqusShortname)
		assert.Equal(t, []string{"one", "two"}, site.About)
		assert.Equal(t, DefaultSite().BaseURL, site.BaseURL)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = "), 0o644))

		_, err := LoadSite(path)
		assert.Error(t, err)
	})
}

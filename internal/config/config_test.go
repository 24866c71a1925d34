package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingvallatech/community-assist/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.NotEmpty(t, cfg.DB.DSN)
	assert.Equal(t, 2.5, cfg.Scrape.DelaySeconds)
	assert.Equal(t, 3, cfg.Scrape.MaxConcurrent)
	assert.Equal(t, 30, cfg.Scrape.TimeoutSeconds)
	assert.Contains(t, cfg.Scrape.UserAgent, "CommunityAssist")
	assert.False(t, cfg.Scrape.SkipLive)
	assert.False(t, cfg.Scrape.EnableDiscovery)
	assert.Equal(t, 10, cfg.Scrape.MaxPerCategory)
	assert.Equal(t, "FL", cfg.Target.State)
	assert.Equal(t, "Brevard", cfg.Target.County)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 9090
scrape:
  delay_seconds: 0.1
  skip_live: true
target:
  county: Orange
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0.1, cfg.Scrape.DelaySeconds)
	assert.True(t, cfg.Scrape.SkipLive)
	assert.Equal(t, "Orange", cfg.Target.County)
	// Untouched keys keep defaults.
	assert.Equal(t, 3, cfg.Scrape.MaxConcurrent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid, err := config.Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero port", func(c *config.Config) { c.Server.Port = 0 }},
		{"empty dsn", func(c *config.Config) { c.DB.DSN = "" }},
		{"zero concurrency", func(c *config.Config) { c.Scrape.MaxConcurrent = 0 }},
		{"negative delay", func(c *config.Config) { c.Scrape.DelaySeconds = -1 }},
		{"zero timeout", func(c *config.Config) { c.Scrape.TimeoutSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid.Validate())
}

func TestScrapeConfig_Durations(t *testing.T) {
	sc := config.ScrapeConfig{DelaySeconds: 2.5, TimeoutSeconds: 30}
	assert.Equal(t, 2500*time.Millisecond, sc.Delay())
	assert.Equal(t, 30*time.Second, sc.Timeout())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Overseerr: OverseerrConfig{URL: "http://localhost:5055", APIKey: "key-a"},
		Sonarr:    ArrConfig{URL: "http://localhost:8989", APIKey: "key-b"},
		Radarr:    ArrConfig{URL: "http://localhost:7878", APIKey: "key-c"},
		HTTP:      HTTPConfig{TimeoutSeconds: 30, MaxRetries: 3},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing overseerr key", func(c *Config) { c.Overseerr.APIKey = "" }, true},
		{"placeholder overseerr key", func(c *Config) { c.Overseerr.APIKey = "your-api-key-here" }, true},
		{"missing sonarr url", func(c *Config) { c.Sonarr.URL = "" }, true},
		{"missing sonarr key", func(c *Config) { c.Sonarr.APIKey = "" }, true},
		{"missing radarr key", func(c *Config) { c.Radarr.APIKey = "" }, true},
		{"zero timeout", func(c *Config) { c.HTTP.TimeoutSeconds = 0 }, true},
		{"negative retries", func(c *Config) { c.HTTP.MaxRetries = -1 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
overseerr:
  url: http://overseerr:5055
  api_key: abc
sonarr:
  url: http://sonarr:8989
  api_key: def
  quality_profile_id: 4
  root_folder: /tv
radarr:
  url: http://radarr:7878
  api_key: ghi
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://overseerr:5055", cfg.Overseerr.URL)
	assert.Equal(t, "abc", cfg.Overseerr.APIKey)
	assert.Equal(t, int64(4), cfg.Sonarr.QualityProfileID)
	assert.Equal(t, "/tv", cfg.Sonarr.RootFolder)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults fill in what the file omits.
	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("OVERSEERR_URL", "http://env-overseerr:5055")
	t.Setenv("OVERSEERR_API_KEY", "env-a")
	t.Setenv("SONARR_API_KEY", "env-b")
	t.Setenv("RADARR_API_KEY", "env-c")

	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://env-overseerr:5055", cfg.Overseerr.URL)
	assert.Equal(t, "env-a", cfg.Overseerr.APIKey)

	// Unset URLs fall back to the defaults.
	assert.Equal(t, "http://sonarr.media.svc.cluster.local:8989", cfg.Sonarr.URL)
	assert.Equal(t, "http://radarr.media.svc.cluster.local:7878", cfg.Radarr.URL)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
overseerr:
  url: http://overseerr:5055
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
trakt:
  client_id: abc
  access_token: token-123
  timeout: 5s
output:
  limit: 25
  format: json
filters:
  busy: "Watchers > 100"
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Trakt.ClientID)
	assert.Equal(t, "token-123", cfg.Trakt.AccessToken)
	assert.Equal(t, 5*time.Second, cfg.Trakt.Timeout)
	assert.Equal(t, "https://api.trakt.tv", cfg.Trakt.APIURL)
	assert.Equal(t, "urn:ietf:wg:oauth:2.0:oob", cfg.Trakt.RedirectURI)
	assert.Equal(t, 25, cfg.Output.Limit)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "Watchers > 100", cfg.Filters["busy"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "trakt:\n  client_id: from-file\n")
	t.Setenv("BETTER_TRAKT_TRAKT_CLIENT_ID", "from-env")
	t.Setenv("BETTER_TRAKT_OUTPUT_LIMIT", "50")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Trakt.ClientID)
	assert.Equal(t, 50, cfg.Output.Limit)
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("BETTER_TRAKT_TRAKT_CLIENT_ID", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Trakt.ClientID)
	assert.Equal(t, 30*time.Second, cfg.Trakt.Timeout)
	assert.Equal(t, 10, cfg.Output.Limit)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "error reading config")
	})

	t.Run("client id missing", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output:\n  limit: 5\n"))
		assert.ErrorContains(t, err, "trakt.client_id")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Trakt:   TraktConfig{ClientID: "abc", Timeout: 30 * time.Second},
			Output:  OutputConfig{Limit: 10, Format: "table"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"placeholder client id", func(c *Config) { c.Trakt.ClientID = "your-client-id-here" }, "trakt.client_id"},
		{"negative timeout", func(c *Config) { c.Trakt.Timeout = -time.Second }, "trakt.timeout"},
		{"zero limit", func(c *Config) { c.Output.Limit = 0 }, "output.limit"},
		{"unknown output format", func(c *Config) { c.Output.Format = "csv" }, "invalid output format"},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, "invalid logging level"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "logfmt" }, "invalid logging format"},
		{"empty preset", func(c *Config) { c.Filters = FilterConfig{"busy": " "} }, `filter preset "busy"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := &Config{Trakt: TraktConfig{
		ClientID:     "abc",
		ClientSecret: "shh",
		RedirectURI:  "http://localhost/callback",
		APIURL:       "https://api-staging.trakt.tv",
		UserAgent:    "my-app/1.0",
	}}

	s := cfg.Settings()
	assert.Equal(t, "abc", s.ClientID)
	assert.Equal(t, "shh", s.ClientSecret)
	assert.Equal(t, "http://localhost/callback", s.RedirectURI)
	assert.Equal(t, "https://api-staging.trakt.tv", s.APIURL)
	assert.Equal(t, "my-app/1.0", s.UserAgent)
}

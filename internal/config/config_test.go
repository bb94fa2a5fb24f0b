package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Pixel 5", cfg.Browser.Device)
	assert.Equal(t, 30*time.Second, cfg.Browser.PageLoadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Browser.ElementWaitTimeout)
	assert.False(t, cfg.Browser.Headed)
	assert.Equal(t, "logs", cfg.ResultsPath)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadFrom_YAMLProviders(t *testing.T) {
	path := writeConfig(t, `
cookies_path: ./cookies
browser:
  screenshots_path: ./shots
providers:
  ola:
    url_template: "https://example.test/ola?from={pickup}&to={drop}"
    selectors:
      - ".fare"
      - ".amount"
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "./cookies", cfg.CookiesPath)
	assert.Equal(t, "./shots", cfg.Browser.ScreenshotsPath)
	assert.Equal(t, "https://example.test/ola?from={pickup}&to={drop}", cfg.Providers.Ola.URLTemplate)
	assert.Equal(t, []string{".fare", ".amount"}, cfg.Providers.Ola.Selectors)
	assert.Empty(t, cfg.Providers.Uber.URLTemplate)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BROWSER_ELEMENT_WAIT_TIMEOUT", "5s")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Browser.ElementWaitTimeout)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "browser: [unclosed")
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Port: "8080"},
		Browser: BrowserConfig{Device: "Pixel 5", PageLoadTimeout: time.Second, ElementWaitTimeout: time.Second},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no device", mutate: func(c *Config) { c.Browser.Device = "" }, wantErr: true},
		{name: "zero page load", mutate: func(c *Config) { c.Browser.PageLoadTimeout = 0 }, wantErr: true},
		{name: "negative wait", mutate: func(c *Config) { c.Browser.ElementWaitTimeout = -time.Second }, wantErr: true},
		{name: "no port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

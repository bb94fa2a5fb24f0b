// Load envs from .env
// Load YAML config
// Apply env overrides and defaults
// Validate config

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Browser   BrowserConfig   `yaml:"browser"`
	Providers ProvidersConfig `yaml:"providers"`
	//Telegram report for the batch command, both must be set to enable it
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Paths
	CookiesPath string `yaml:"cookies_path" env:"COOKIES_PATH"`
	ResultsPath string `yaml:"results_path" env:"RESULTS_PATH" env-default:"logs"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type BrowserConfig struct {
	Headed             bool          `yaml:"headed" env:"BROWSER_HEADED"`
	Device             string        `yaml:"device" env:"BROWSER_DEVICE" env-default:"Pixel 5"`
	PageLoadTimeout    time.Duration `yaml:"page_load_timeout" env:"BROWSER_PAGE_LOAD_TIMEOUT" env-default:"30s"`
	ElementWaitTimeout time.Duration `yaml:"element_wait_timeout" env:"BROWSER_ELEMENT_WAIT_TIMEOUT" env-default:"15s"`
	SkipInstall        bool          `yaml:"skip_install" env:"BROWSER_SKIP_INSTALL"`
	ScreenshotsPath    string        `yaml:"screenshots_path" env:"BROWSER_SCREENSHOTS_PATH"`
}

// ProvidersConfig overrides the built-in URL templates and selectors.
// Selectors are provisional: the provider sites change markup without notice.
type ProvidersConfig struct {
	Uber   LiveProviderConfig `yaml:"uber"`
	Ola    LiveProviderConfig `yaml:"ola"`
	Rapido LiveProviderConfig `yaml:"rapido"`
}

type LiveProviderConfig struct {
	URLTemplate string   `yaml:"url_template"`
	Selectors   []string `yaml:"selectors"`
}

// TelegramEnabled reports whether batch results should be posted to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Load reads the file named by CONFIG_PATH (configs/config.yaml by default).
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	return LoadFrom(path)
}

// LoadFrom reads YAML from path, then applies env overrides and defaults.
// A missing file is not an error: env and defaults are enough to run.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	//override with env vars, fill defaults for fields still empty
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Browser.Device == "" {
		return errors.New("browser.device is required")
	}
	if c.Browser.PageLoadTimeout <= 0 {
		return fmt.Errorf("browser.page_load_timeout must be positive, got %s", c.Browser.PageLoadTimeout)
	}
	if c.Browser.ElementWaitTimeout <= 0 {
		return fmt.Errorf("browser.element_wait_timeout must be positive, got %s", c.Browser.ElementWaitTimeout)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}

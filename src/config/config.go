package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/crypto-chatbot/src/coingecko"
)

// Default values for optional configuration fields.
const (
	DefaultTimeoutSec = 10
	DefaultCurrency   = "usd"
	DefaultTopN       = 10
	MaxTopN           = 50
	DefaultLogLevel   = "warn"
)

// Config controls the chatbot. Precedence, lowest to highest:
// defaults, YAML file, environment variables, command-line flags
// (applied by the caller).
type Config struct {
	BaseURL         string `yaml:"base_url"`
	TimeoutSec      int    `yaml:"timeout_sec"`
	DefaultCurrency string `yaml:"default_currency"`
	DefaultTopN     int    `yaml:"default_top_n"`
	LogLevel        string `yaml:"log_level"`

	// set by ApplyFlags; kept as a duration so sub-second timeouts
	// survive instead of truncating to an unbounded zero
	timeoutOverride time.Duration
}

// ApplyFlags layers command-line flag values on top of the loaded
// configuration. Zero values mean the flag was not set.
func (c *Config) ApplyFlags(baseURL string, timeout time.Duration, logLevel string) {
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	if timeout > 0 {
		c.timeoutOverride = timeout
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = coingecko.DefaultBaseURL
	}
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = DefaultTimeoutSec
	}
	if c.DefaultCurrency == "" {
		c.DefaultCurrency = DefaultCurrency
	}
	if c.DefaultTopN <= 0 {
		c.DefaultTopN = DefaultTopN
	}
	if c.DefaultTopN > MaxTopN {
		c.DefaultTopN = MaxTopN
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		c.BaseURL = v
	}

	if v := os.Getenv("COINGECKO_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("applyEnv: invalid COINGECKO_TIMEOUT_SEC '%s': %w", v, err)
		}
		c.TimeoutSec = sec
	}

	if v := os.Getenv("CHATBOT_DEFAULT_CURRENCY"); v != "" {
		c.DefaultCurrency = v
	}

	if v := os.Getenv("CHATBOT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	return nil
}

func (c *Config) Timeout() time.Duration {
	if c.timeoutOverride > 0 {
		return c.timeoutOverride
	}

	return time.Duration(c.TimeoutSec) * time.Second
}

// Load builds the effective configuration. An empty path skips the
// YAML file; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Load: failed to open config file: %w", err)
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("Load: failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	cfg.applyDefaults()

	return cfg, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/crypto-chatbot/src/coingecko"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, coingecko.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeoutSec, cfg.TimeoutSec)
	assert.Equal(t, DefaultCurrency, cfg.DefaultCurrency)
	assert.Equal(t, DefaultTopN, cfg.DefaultTopN)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://example.com/api/v3
timeout_sec: 3
default_currency: eur
default_top_n: 5
log_level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/v3", cfg.BaseURL)
	assert.Equal(t, 3, cfg.TimeoutSec)
	assert.Equal(t, "eur", cfg.DefaultCurrency)
	assert.Equal(t, 5, cfg.DefaultTopN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com\n"), 0644))

	t.Setenv("COINGECKO_BASE_URL", "https://env.example.com")
	t.Setenv("COINGECKO_TIMEOUT_SEC", "7")
	t.Setenv("CHATBOT_DEFAULT_CURRENCY", "gbp")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 7, cfg.TimeoutSec)
	assert.Equal(t, "gbp", cfg.DefaultCurrency)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing named file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid timeout env", func(t *testing.T) {
		t.Setenv("COINGECKO_TIMEOUT_SEC", "soon")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestFlagsOverrideEnvAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://file.example.com
timeout_sec: 3
log_level: info
`), 0644))

	t.Setenv("COINGECKO_BASE_URL", "https://env.example.com")
	t.Setenv("CHATBOT_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.ApplyFlags("https://flag.example.com", 2*time.Second, "debug")

	assert.Equal(t, "https://flag.example.com", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyFlags(t *testing.T) {
	t.Run("sub-second timeout stays bounded", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		cfg.ApplyFlags("", 500*time.Millisecond, "")

		assert.Equal(t, 500*time.Millisecond, cfg.Timeout())
		assert.Positive(t, cfg.Timeout(), "a zero timeout would make the HTTP client unbounded")
	})

	t.Run("unset flags keep loaded values", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		cfg.ApplyFlags("", 0, "")

		assert.Equal(t, coingecko.DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout())
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})
}

func TestDefaultTopNIsCapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_top_n: 100\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, MaxTopN, cfg.DefaultTopN)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save and restore environment variables after the test
	envVars := []string{
		"API_BASE_URL", "HTTP_TIMEOUT_MS", "DEBOUNCE_MS", "TERM_WIDTH",
		"APP_PORT", "MOCKAPI_REQUIRE_AUTH", "MOCKAPI_CITIES_FILE", "MOCKAPI_ARTICLES_FILE",
		"LOG_LEVEL",
	}
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key) // Clear before test
	}
	defer func() {
		for key, val := range originalEnv {
			if val != "" {
				os.Setenv(key, val)
			}
		}
	}()

	t.Run("Default values", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
		assert.Equal(t, time.Duration(0), cfg.API.Timeout)
		assert.Equal(t, 300*time.Millisecond, cfg.UI.DebounceInterval)
		assert.Equal(t, 80, cfg.UI.TermWidth)
		assert.Equal(t, "8080", cfg.Stub.Port)
		assert.False(t, cfg.Stub.RequireAuth)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Custom environment variables", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://news.example.com")
		t.Setenv("HTTP_TIMEOUT_MS", "5000")
		t.Setenv("DEBOUNCE_MS", "150")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("MOCKAPI_REQUIRE_AUTH", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://news.example.com", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, 150*time.Millisecond, cfg.UI.DebounceInterval)
		assert.Equal(t, "9090", cfg.Stub.Port)
		assert.True(t, cfg.Stub.RequireAuth)
	})

	t.Run("Invalid integer fallback", func(t *testing.T) {
		t.Setenv("DEBOUNCE_MS", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 300*time.Millisecond, cfg.UI.DebounceInterval)
	})

	t.Run("Invalid boolean fallback", func(t *testing.T) {
		t.Setenv("MOCKAPI_REQUIRE_AUTH", "maybe")
		cfg, err := Load()
		require.NoError(t, err)

		assert.False(t, cfg.Stub.RequireAuth)
	})
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	API  APIConfig
	UI   UIConfig
	Stub StubConfig
	Log  LogConfig
}

// APIConfig holds settings for the backend API client
type APIConfig struct {
	BaseURL string
	// Timeout of zero means no client-side timeout is enforced
	Timeout time.Duration
}

// UIConfig holds settings for the terminal client
type UIConfig struct {
	DebounceInterval time.Duration
	TermWidth        int
}

// StubConfig holds settings for the local mock API server
type StubConfig struct {
	Port         string
	RequireAuth  bool
	CitiesFile   string
	ArticlesFile string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT_MS", 0)) * time.Millisecond,
		},
		UI: UIConfig{
			DebounceInterval: time.Duration(getEnvAsInt("DEBOUNCE_MS", 300)) * time.Millisecond,
			TermWidth:        getEnvAsInt("TERM_WIDTH", 80),
		},
		Stub: StubConfig{
			Port:         getEnv("APP_PORT", "8080"),
			RequireAuth:  getEnvAsBool("MOCKAPI_REQUIRE_AUTH", false),
			CitiesFile:   getEnv("MOCKAPI_CITIES_FILE", ""),
			ArticlesFile: getEnv("MOCKAPI_ARTICLES_FILE", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs at startup. The tenant identity
// and base URL are injected here rather than read from globals so every
// component that needs them receives them explicitly.
type Config struct {
	Port      string
	DBPath    string
	BaseURL   string
	TenantID  string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, with .env support for local
// development. Missing values fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("MENUKU_PORT", "8080"),
		DBPath:    getEnv("MENUKU_DB_PATH", "menuku.db"),
		BaseURL:   os.Getenv("MENUKU_BASE_URL"),
		TenantID:  getEnv("MENUKU_TENANT_ID", "user_unique_id_123"),
		LogLevel:  getEnv("MENUKU_LOG_LEVEL", "info"),
		LogFormat: getEnv("MENUKU_LOG_FORMAT", "text"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	return cfg
}

// PreviewURL returns the public customer-facing menu URL for the tenant.
func (c *Config) PreviewURL() string {
	return fmt.Sprintf("%s/preview/%s", c.BaseURL, c.TenantID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

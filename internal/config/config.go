package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabaseDriver string
	DatabasePath   string
	DatabaseDSN    string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Registry settings
	CourtName string

	// Auth settings
	JWTSecret   string
	TokenTTL    time.Duration
	RequireAuth bool

	// HTTP settings
	CORSOrigins   []string
	APIRateLimit  int
	APIRateWindow time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8080"),
		DatabaseDriver: strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabasePath:   getEnv("DATABASE_PATH", "./data/court_registry.db"),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		CourtName:      getEnv("COURT_NAME", "District Court Registry"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}

	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	tokenTTL, err := strconv.Atoi(getEnv("TOKEN_TTL", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = time.Duration(tokenTTL) * time.Minute

	cfg.RequireAuth, err = strconv.ParseBool(getEnv("REQUIRE_AUTH", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRE_AUTH: %w", err)
	}

	cfg.APIRateLimit, err = strconv.Atoi(getEnv("API_RATE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT: %w", err)
	}

	apiRateWindow, err := strconv.Atoi(getEnv("API_RATE_WINDOW", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_WINDOW: %w", err)
	}
	cfg.APIRateWindow = time.Duration(apiRateWindow) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks combinations that individual parsers cannot.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for sqlite")
		}
	case "postgres":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for postgres")
		}
	default:
		return fmt.Errorf("invalid DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.APIRateWindow <= 0 {
		return fmt.Errorf("API_RATE_WINDOW must be positive")
	}
	if c.RequireAuth && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when REQUIRE_AUTH is set")
	}
	return nil
}

// DatabaseTarget returns the path or DSN for the configured driver.
func (c *Config) DatabaseTarget() string {
	if c.DatabaseDriver == "postgres" {
		return c.DatabaseDSN
	}
	return c.DatabasePath
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

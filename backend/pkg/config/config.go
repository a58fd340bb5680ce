package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "synonym-search/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port     string
	Env      string
	LogLevel string

	// HTTP
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSAllowOrigin string
	MetricsEnabled  bool

	// Synonyms
	TransitiveLookup      bool     // GET resolves the whole connected group unless overridden per request
	MaxSynonymsPerRequest int      // Upper bound on the synonyms list of a single save
	SeedFiles             []string // YAML/JSON files linked into the store at startup
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", ""),
		RequestTimeout:        getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		CORSAllowOrigin:       getEnv("CORS_ALLOW_ORIGIN", "*"),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
		TransitiveLookup:      getEnvBool("SYNONYMS_TRANSITIVE", true),
		MaxSynonymsPerRequest: getEnvInt("MAX_SYNONYMS_PER_REQUEST", 100),
		SeedFiles:             getEnvList("SEED_FILES"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return apperrors.NewConfigValidationFailed("PORT", "must be a number between 1 and 65535")
	}
	if c.RequestTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("REQUEST_TIMEOUT", "must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("SHUTDOWN_TIMEOUT", "must be positive")
	}
	if c.MaxSynonymsPerRequest <= 0 {
		return apperrors.NewConfigValidationFailed("MAX_SYNONYMS_PER_REQUEST", "must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseBool(value); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if result, err := time.ParseDuration(value); err == nil {
			return result
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

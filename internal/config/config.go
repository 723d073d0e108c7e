// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"brandcraft/internal/ai"
	"brandcraft/internal/cache"
	"brandcraft/internal/database"
	"brandcraft/internal/storage"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Generation history database
	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"` // "sqlite" or "postgres"
	SQLitePath string `env:"SQLITE_PATH" envDefault:"brandcraft.db"`
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"brandcraft"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"brandcraft"`

	// Valkey (Redis-compatible cache). An empty host disables caching.
	ValkeyHost      string        `env:"VALKEY_HOST"`
	ValkeyPort      string        `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword  string        `env:"VALKEY_PASSWORD"`
	ValkeyDB        int           `env:"VALKEY_DB" envDefault:"0"`
	HistoryCacheTTL time.Duration `env:"HISTORY_CACHE_TTL" envDefault:"30s"`

	// Text-generation endpoint. An empty key means fallback-only mode.
	AIAPIKey      string        `env:"HUGGINGFACE_API_KEY"`
	AIURL         string        `env:"HUGGINGFACE_API_URL" envDefault:"https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"`
	AITimeout     time.Duration `env:"AI_TIMEOUT" envDefault:"10s"`
	AIMaxLength   int           `env:"AI_MAX_LENGTH" envDefault:"512"`
	AITemperature float64       `env:"AI_TEMPERATURE" envDefault:"0.7"`

	// S3-compatible bundle archive. Disabled unless endpoint, bucket and
	// credentials are all set.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Prefix    string `env:"S3_PREFIX" envDefault:"bundles"`
}

// Load reads configuration from the process environment, applying defaults
// for development where appropriate. Every invalid value is reported in one
// aggregated error.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads variables from envfile before calling Load. Variables that
// are already set in the process environment win over the file. A missing
// file is not an error.
func LoadFrom(envfile string) (*Config, error) {
	if envfile != "" {
		if _, err := os.Stat(envfile); err == nil {
			if err := godotenv.Load(envfile); err != nil {
				return nil, fmt.Errorf("read %s: %w", envfile, err)
			}
		}
	}
	return Load()
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks every setting and collects all failures.
func (c *Config) validate() error {
	var result *multierror.Error

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		result = multierror.Append(result, fmt.Errorf("APP_PORT must be a port number, got %q", c.Port))
	}

	switch c.DBDriver {
	case database.DriverSQLite:
		if c.SQLitePath == "" {
			result = multierror.Append(result, fmt.Errorf("SQLITE_PATH must be set when DB_DRIVER=sqlite"))
		}
	case database.DriverPostgres:
		if c.Env == "production" && c.DBPassword == "changeme" {
			result = multierror.Append(result, fmt.Errorf("POSTGRES_PASSWORD must be set in production"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("DB_DRIVER must be %q or %q, got %q",
			database.DriverSQLite, database.DriverPostgres, c.DBDriver))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}

	if c.AITimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout))
	}
	if c.AIMaxLength <= 0 {
		result = multierror.Append(result, fmt.Errorf("AI_MAX_LENGTH must be positive, got %d", c.AIMaxLength))
	}
	if c.AITemperature <= 0 || c.AITemperature > 2 {
		result = multierror.Append(result, fmt.Errorf("AI_TEMPERATURE must be in (0, 2], got %v", c.AITemperature))
	}
	if c.ValkeyDB < 0 || c.ValkeyDB > 15 {
		result = multierror.Append(result, fmt.Errorf("VALKEY_DB must be between 0 and 15, got %d", c.ValkeyDB))
	}
	if c.HistoryCacheTTL < 0 {
		result = multierror.Append(result, fmt.Errorf("HISTORY_CACHE_TTL must not be negative, got %s", c.HistoryCacheTTL))
	}

	return result.ErrorOrNil()
}

// DSN returns the connection string for the configured database driver.
func (c *Config) DSN() string {
	if c.DBDriver == database.DriverPostgres {
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
		)
	}
	return database.SQLiteDSN(c.SQLitePath)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// Valkey returns the settings for the history cache connection.
func (c *Config) Valkey() cache.ValkeyConfig {
	return cache.ValkeyConfig{
		Host:     c.ValkeyHost,
		Port:     c.ValkeyPort,
		Password: c.ValkeyPassword,
		DB:       c.ValkeyDB,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AI returns the settings for the text-generation client.
func (c *Config) AI() ai.Config {
	return ai.Config{
		APIKey:      c.AIAPIKey,
		URL:         c.AIURL,
		Timeout:     c.AITimeout,
		MaxLength:   c.AIMaxLength,
		Temperature: c.AITemperature,
	}
}

// Storage returns the settings for the bundle archive.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Endpoint:  c.S3Endpoint,
		Region:    c.S3Region,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Bucket:    c.S3Bucket,
		Prefix:    c.S3Prefix,
	}
}

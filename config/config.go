package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

var ErrInvalidConfig = errors.New("invalid configuration")

type AppConfig struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Extract  ExtractConfig  `envPrefix:"EXTRACT_"`
	Filter   FilterConfig   `envPrefix:"FILTER_"`
	Catalog  CatalogConfig  `envPrefix:"CATALOG_"`

	// ProjectID is the GCP project hosting the service; BigQuery jobs are billed here.
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT"`

	SentryDSN       string `env:"SENTRY_DSN"`
	ProfilerEnabled bool   `env:"PROFILER_ENABLED" envDefault:"false"`
	GCPLogging      bool   `env:"GCP_LOGGING" envDefault:"false"`
}

type ServerConfig struct {
	Addr            string        `env:"ADDR" envDefault:"0.0.0.0:8000" validate:"required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	// URL is overridden by DATABASE_URL when set.
	URL string `env:"URL" envDefault:"sqlite://./bq_metadata.db" validate:"required"`

	ConnectAttempts int           `env:"CONNECT_ATTEMPTS" envDefault:"5" validate:"min=1"`
	ConnectBackoff  time.Duration `env:"CONNECT_BACKOFF" envDefault:"2s"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10" validate:"min=1"`
	DisablePool     bool          `env:"DISABLE_POOL" envDefault:"false"`
}

type ExtractConfig struct {
	Workers int `env:"WORKERS" envDefault:"4" validate:"min=1"`

	// Buffer is how many extracted units may wait for persistence.
	Buffer int `env:"BUFFER" envDefault:"1" validate:"min=0"`
}

type FilterConfig struct {
	Prefix           string   `env:"PREFIX" envDefault:"salesforce"`
	ExcludedSuffixes []string `env:"EXCLUDED_SUFFIXES" envDefault:"_mirror,_preprod" envSeparator:","`
	Disabled         bool     `env:"DISABLED" envDefault:"false"`
}

type CatalogConfig struct {
	// RateLimit is the number of catalog requests per second, 0 disables limiting.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"0" validate:"min=0"`
	RateBurst int     `env:"RATE_BURST" envDefault:"1" validate:"min=1"`
}

// Load reads the configuration from the environment. Variables from an
// optional .env file are applied first without overriding the environment.
func Load() (*AppConfig, error) {
	if _, err := os.Stat(defaultEnvFile); err == nil {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// DATABASE_URL is not under the DB_ prefix.
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		cfg.Database.URL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/contactkeval/present-value/internal/logger"
)

// Config holds runtime configuration read from PU_* environment variables.
type Config struct {
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReportDir       string        `envconfig:"REPORT_DIR"`
	Scenarios       string        `envconfig:"SCENARIOS"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Level is LogLevel parsed.
	Level logger.Level `ignored:"true"`
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("PU", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = level

	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("PU_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return &cfg, nil
}

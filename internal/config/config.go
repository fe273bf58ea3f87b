package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config keeps runtime settings for the service.
type Config struct {
	DatabaseURL    string        `envconfig:"DATABASE_URL" default:"tasks.db"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"text"`
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"5h"`
	ReportDailyAt  string        `envconfig:"REPORT_DAILY_AT"`
}

// Load reads env files and then the process environment. With no envFiles
// it reads ./.env if present; files named by the caller must exist.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.ReportDailyAt = strings.TrimSpace(cfg.ReportDailyAt)

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return cfg, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// ReportsEnabled reports whether any periodic report is configured.
func (c Config) ReportsEnabled() bool {
	return c.ReportInterval > 0 || c.ReportDailyAt != ""
}

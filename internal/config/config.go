// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/mindstep/aiplan/internal/estimate"
	"github.com/mindstep/aiplan/internal/llm"
)

// Config holds every setting of the service and CLI.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	ProfileServiceURL string        `env:"PROFILE_SERVICE_URL"`
	TaskServiceURL    string        `env:"TASK_SERVICE_URL"`
	ClientTimeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"3s"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	// DBPath is the audit database; empty resolves store.DefaultDBPath.
	DBPath string `env:"PLAN_DB"`

	LogMode       string `env:"LOG_MODE" envDefault:"production"`
	Locale        string `env:"PLAN_LOCALE" envDefault:"zh"`
	Seed          string `env:"PLAN_SEED"`
	TemplatesFile string `env:"TEMPLATES_FILE"`

	LLM llm.Config `envPrefix:"PLAN_LLM_"`
}

// Load parses the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if _, err := estimate.ForLocale(c.Locale); err != nil {
		return err
	}
	if _, err := c.SeedValue(); err != nil {
		return err
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB)
	}
	return c.LLM.Validate()
}

// SeedValue returns the fixed task-matching seed, or nil when unset.
func (c *Config) SeedValue() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("PLAN_SEED must be an unsigned integer: %w", err)
	}
	return &v, nil
}

// Remote reports whether both upstream services are configured.
func (c *Config) Remote() bool {
	return c.ProfileServiceURL != "" && c.TaskServiceURL != ""
}

package rulevalidation

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment driven settings for a Validator.
type Config struct {
	// Concurrency caps checks running at once; 0 means unbounded.
	Concurrency int `env:"RULEVALIDATION_CONCURRENCY" envDefault:"0"`
	// DateLayout is the default layout of the date rule.
	DateLayout string `env:"RULEVALIDATION_DATE_LAYOUT" envDefault:"2006-01-02"`
	// LogLevel is used when Logger is built from the config.
	LogLevel slog.Level `env:"RULEVALIDATION_LOG_LEVEL" envDefault:"INFO"`
}

// LoadConfig parses Config from the environment. Any files given are
// loaded into the environment first with godotenv; variables already set
// take precedence.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("rulevalidation: load env files: %w", err)
		}
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("rulevalidation: parse config: %w", err)
	}
	return cfg, nil
}

// Logger returns a text logger writing to stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// NewFromConfig returns a Validator configured by cfg, logging through
// cfg.Logger. Options are applied after the config, so they win.
func NewFromConfig(cfg Config, opts ...Option) *Validator {
	base := []Option{
		WithLogger(cfg.Logger()),
		WithConcurrency(cfg.Concurrency),
		WithDateLayout(cfg.DateLayout),
	}
	return New(append(base, opts...)...)
}

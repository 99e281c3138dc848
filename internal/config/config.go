// Package config loads process configuration from the environment, an
// optional .env file and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// ConfigError represents a configuration validation failure
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidMaxRolls   ConfigError = "max rolls must be positive"
	ErrInvalidSessionTTL ConfigError = "session ttl must not be negative"
	ErrMissingToken      ConfigError = "DISCORD_TOKEN is required"
)

// Config holds the settings shared by every entry point
type Config struct {
	LogLevel string `env:"DICE_LOG_LEVEL" envDefault:"info"`

	// Seed makes simulations reproducible when non-zero
	Seed int64 `env:"DICE_SEED"`

	// ChartDir receives a PNG per rendered chart when set
	ChartDir string `env:"DICE_CHART_DIR"`

	MaxRolls int `env:"DICE_MAX_ROLLS" envDefault:"1000000"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"DICE_SESSION_TTL" envDefault:"24h"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// MetricsAddr enables the Prometheus endpoint when set
	MetricsAddr string `env:"METRICS_ADDR"`
}

// LoadDotEnv loads variables from the given files into the environment.
// Missing files are skipped; existing variables are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseConfig parses environment and flags into Config. Flags take
// precedence over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible simulations (0 seeds from the clock)")
	fs.StringVar(&cfg.ChartDir, "chart-dir", cfg.ChartDir, "Directory receiving a PNG per rendered chart")
	fs.IntVar(&cfg.MaxRolls, "max-rolls", cfg.MaxRolls, "Largest accepted number of rolls")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for session storage")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Address serving Prometheus metrics")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values every entry point relies on
func (c Config) Validate() error {
	if c.MaxRolls <= 0 {
		return ErrInvalidMaxRolls
	}
	if c.SessionTTL < 0 {
		return ErrInvalidSessionTTL
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// NewLogger builds the structured logger for a process
func NewLogger(w io.Writer, prefix string, c Config) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

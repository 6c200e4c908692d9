package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/talx-hub/point-ledger/internal/model"
)

type Storage string

const (
	StorageMemory   Storage = "memory"
	StoragePostgres Storage = "postgres"
	StorageRedis    Storage = "redis"
)

type Config struct {
	UseRewardRate   decimal.Decimal `env:"USE_REWARD_RATE"  envDefault:"0.01"`
	RunAddr         string          `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	DatabaseURI     string          `env:"DATABASE_URI"     envDefault:""`
	RedisURL        string          `env:"REDIS_URL"        envDefault:""`
	LogLevel        string          `env:"LOG_LEVEL"        envDefault:"info"`
	AllowedOrigins  []string        `env:"ALLOWED_ORIGINS"  envDefault:"*" envSeparator:","`
	LockTimeout     time.Duration   `env:"LOCK_TIMEOUT"     envDefault:"5s"`
	MemoryLatency   time.Duration   `env:"MEMORY_LATENCY"   envDefault:"0s"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Storage picks the backend: postgres when DATABASE_URI is set, then redis,
// memory otherwise.
func (c *Config) Storage() Storage {
	switch {
	case c.DatabaseURI != "":
		return StoragePostgres
	case c.RedisURL != "":
		return StorageRedis
	default:
		return StorageMemory
	}
}

type Builder struct {
	cfg  *Config
	log  *slog.Logger
	errs []error
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			UseRewardRate:   decimal.Zero,
			RunAddr:         "",
			DatabaseURI:     "",
			RedisURL:        "",
			LogLevel:        "",
			LockTimeout:     model.DefaultLockTimeout,
			ShutdownTimeout: model.DefaultShutdownTimeout,
		},
		log: log,
	}
}

// FromDotEnv loads a .env file into the environment if there is one.
// Variables already set win.
func (b *Builder) FromDotEnv(filenames ...string) *Builder {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.fail("failed to load .env", err)
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.fail("failed to parse config", err)
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	return b.fromArgs(os.Args[1:])
}

func (b *Builder) fromArgs(args []string) *Builder {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	flags.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	flags.StringVar(&b.cfg.RedisURL, "r", b.cfg.RedisURL, "Redis URL")
	flags.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	flags.DurationVar(&b.cfg.LockTimeout, "t", b.cfg.LockTimeout, "Per-user lock timeout")
	flags.DurationVar(&b.cfg.MemoryLatency, "m", b.cfg.MemoryLatency, "Simulated memory store latency")
	flags.DurationVar(&b.cfg.ShutdownTimeout, "s", b.cfg.ShutdownTimeout, "Graceful shutdown timeout")
	flags.TextVar(&b.cfg.UseRewardRate, "u", b.cfg.UseRewardRate, "Reward rate granted on use")

	if err := flags.Parse(args); err != nil {
		b.fail("failed to parse flags", err)
	}
	return b
}

func (b *Builder) GetConfig() (*Config, error) {
	if b.cfg.LockTimeout < 0 {
		b.errs = append(b.errs, fmt.Errorf("lock timeout must not be negative: %s", b.cfg.LockTimeout))
	}
	if b.cfg.UseRewardRate.IsNegative() {
		b.errs = append(b.errs, fmt.Errorf("use reward rate must not be negative: %s", b.cfg.UseRewardRate))
	}
	if b.cfg.MemoryLatency < 0 {
		b.errs = append(b.errs, fmt.Errorf("memory latency must not be negative: %s", b.cfg.MemoryLatency))
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return b.cfg, nil
}

func (b *Builder) fail(msg string, err error) {
	b.log.LogAttrs(context.Background(),
		slog.LevelError, msg, slog.Any(model.KeyLoggerError, err))
	b.errs = append(b.errs, fmt.Errorf("%s: %w", msg, err))
}

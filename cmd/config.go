package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"tracking/internal/adapters/out/postgres"
	pkgerrs "tracking/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MaxRelayBatchSize bounds OUTBOX_RELAY_BATCH_SIZE.
const MaxRelayBatchSize = 1000

// Event dispatchers selectable with EVENT_DISPATCHER.
const (
	DispatcherLog   = "log"
	DispatcherRedis = "redis"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8082"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" envDefault:"tracking"`
	DBSslMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBDriver       string `env:"DB_DRIVER" envDefault:"pgx"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBLogQueries   bool   `env:"DB_LOG_QUERIES"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	EventDispatcher   string `env:"EVENT_DISPATCHER" envDefault:"log"`
	RedisAddr         string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB"`
	RedisStream       string `env:"REDIS_STREAM" envDefault:"tracking.events"`
	RedisStreamMaxLen int64  `env:"REDIS_STREAM_MAX_LEN" envDefault:"100000"`

	RelaySchedule  string `env:"OUTBOX_RELAY_SCHEDULE" envDefault:"* * * * * *"`
	RelayBatchSize int    `env:"OUTBOX_RELAY_BATCH_SIZE" envDefault:"100"`
}

// LoadConfig reads envFile into the process environment when it exists, then
// parses Config from the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.EventDispatcher {
	case DispatcherLog, DispatcherRedis:
	default:
		errs = append(errs, fmt.Errorf("EVENT_DISPATCHER must be %q or %q, got %q",
			DispatcherLog, DispatcherRedis, c.EventDispatcher))
	}

	switch c.DBDriver {
	case postgres.DriverPgx, postgres.DriverLibPQ:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q",
			postgres.DriverPgx, postgres.DriverLibPQ, c.DBDriver))
	}

	if c.RelayBatchSize < 1 || c.RelayBatchSize > MaxRelayBatchSize {
		errs = append(errs, pkgerrs.NewValueIsOutOfRangeError(
			"OUTBOX_RELAY_BATCH_SIZE", c.RelayBatchSize, 1, MaxRelayBatchSize))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c Config) DatabaseOptions() postgres.Options {
	return postgres.Options{
		DSN:          postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode),
		Driver:       c.DBDriver,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
		LogQueries:   c.DBLogQueries,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean Info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

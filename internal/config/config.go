package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		Slack     Slack
		Database  Database
		HTTP      HTTP
		Scheduler Scheduler
		Log       Log
	}

	Slack struct {
		BotToken      string `env:"SLACK_BOT_TOKEN"      env-required:"true"`
		SigningSecret string `env:"SLACK_SIGNING_SECRET" env-required:"true"`
	}

	Database struct {
		Path        string        `env:"DATABASE_PATH"         env-default:"./alarms.db"`
		BusyTimeout time.Duration `env:"DATABASE_BUSY_TIMEOUT" env-default:"15s"`
	}

	HTTP struct {
		Port            string        `env:"PORT"             env-default:"3000"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
	}

	Scheduler struct {
		Timezone      string        `env:"TIMEZONE"            env-default:"Asia/Seoul"`
		TickInterval  time.Duration `env:"TICK_INTERVAL"       env-default:"60s"`
		NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT"      env-default:"10s"`
		NotifyRate    float64       `env:"NOTIFY_RATE_PER_SEC" env-default:"1"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL"  env-default:"info"`
		Format string `env:"LOG_FORMAT" env-default:"console"`
	}
)

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// An exported but empty variable passes env-required
	if cfg.Slack.BotToken == "" || cfg.Slack.SigningSecret == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required")
	}
	if cfg.Scheduler.TickInterval < time.Second {
		return nil, fmt.Errorf("TICK_INTERVAL must be at least 1s, got %s", cfg.Scheduler.TickInterval)
	}
	if cfg.Scheduler.NotifyTimeout <= 0 {
		return nil, fmt.Errorf("NOTIFY_TIMEOUT must be positive, got %s", cfg.Scheduler.NotifyTimeout)
	}
	// The scheduler holds the write lock while one alarm is sent
	if cfg.Database.BusyTimeout <= cfg.Scheduler.NotifyTimeout {
		return nil, fmt.Errorf("DATABASE_BUSY_TIMEOUT (%s) must be longer than NOTIFY_TIMEOUT (%s)",
			cfg.Database.BusyTimeout, cfg.Scheduler.NotifyTimeout)
	}

	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Scheduler.Timezone, err)
	}
	return loc, nil
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Background poller; empty MonitoredChannelID disables it.
	MonitoredChannelID   string `env:"MONITORED_CHANNEL_ID"`
	PollFrequencyMinutes int    `env:"POLL_FREQUENCY_MINUTES" default:"30"`

	// Notification relay; both must be set for notifications to be sent.
	TelegramURL   string `env:"TG_URL"`
	TelegramRoute string `env:"TG_ROUTE"` // "botId:chatId"

	// Optional backends.
	RedisURL    string `env:"REDIS_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"20s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.PollFrequencyMinutes < 1 {
		return fmt.Errorf("POLL_FREQUENCY_MINUTES must be at least 1, got %d", cfg.PollFrequencyMinutes)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	if cfg.TelegramRoute != "" {
		parts := strings.SplitN(cfg.TelegramRoute, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("TG_ROUTE must have the form botId:chatId, got %q", cfg.TelegramRoute)
		}
	}

	return nil
}

// PollInterval returns the poller interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollFrequencyMinutes) * time.Minute
}

// NotificationsConfigured reports whether the Telegram relay is fully
// configured. With either value missing, notifications are skipped.
func (c *Config) NotificationsConfigured() bool {
	return c.TelegramURL != "" && c.TelegramRoute != ""
}

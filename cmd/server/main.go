package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mindvr/yt-live-monitor/internal/adapter/httpserver"
	"github.com/mindvr/yt-live-monitor/internal/adapter/postgres"
	adapterredis "github.com/mindvr/yt-live-monitor/internal/adapter/redis"
	"github.com/mindvr/yt-live-monitor/internal/app"
	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/notify"
	"github.com/mindvr/yt-live-monitor/internal/platform/config"
	"github.com/mindvr/yt-live-monitor/internal/platform/logging"
	"github.com/mindvr/yt-live-monitor/internal/youtube"
)

const shutdownTimeout = 10 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupNotifier(cfg *config.Config) domain.Notifier {
	if !cfg.NotificationsConfigured() {
		slog.Info("TG_URL or TG_ROUTE not set, notifications disabled")
		return notify.Noop{}
	}

	relay, err := notify.NewTelegramRelay(cfg.TelegramURL, cfg.TelegramRoute)
	if err != nil {
		slog.Error("Failed to create notification relay", "error", err)
		os.Exit(1)
	}
	return relay
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var monitored domain.ChannelID
	if cfg.MonitoredChannelID != "" {
		if !domain.IsChannelID(cfg.MonitoredChannelID) {
			slog.Error("MONITORED_CHANNEL_ID is not a canonical channel ID", "value", cfg.MonitoredChannelID)
			os.Exit(1)
		}
		monitored = domain.ChannelID(cfg.MonitoredChannelID)
	} else {
		slog.Info("MONITORED_CHANNEL_ID not set, poller runs are no-ops")
	}

	ytClient := youtube.NewClient()
	ytClient.HTTPClient.Timeout = cfg.RequestTimeout

	var healthChecks []httpserver.HealthCheck

	// Optional check history.
	var history domain.CheckHistory
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := postgres.ApplySchema(ctx, pool); err != nil {
			slog.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}

		history = postgres.NewCheckRepo(pool)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pool.Ping(ctx) },
		})
	}

	// Announcement store: Redis when configured, otherwise in-process.
	var announced domain.AnnouncementStore = app.NewMemoryAnnouncementStore()
	if cfg.RedisURL != "" {
		redisClient, err := adapterredis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()

		announced = adapterredis.NewAnnouncementStore(redisClient)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	notifier := setupNotifier(cfg)

	checks := app.NewCheckService(ytClient, ytClient, history, clock)
	poller := app.NewPoller(checks, notifier, announced, monitored, cfg.PollInterval(), clock)

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		poller.Run(ctx)
	}()

	srv := httpserver.NewServer(cfg, checks, history, healthChecks)

	go func() {
		<-ctx.Done()
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-pollerDone
	slog.Info("Shutdown complete")
}

// Package httpserver exposes the check operations over HTTP.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/platform/config"
)

const serviceName = "yt-live-monitor"

type checkService interface {
	Check(ctx context.Context, input string) domain.CheckResult
	ResolveChannelID(ctx context.Context, input string) (domain.ChannelID, error)
}

// HealthCheck is a named health check function.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	checks  checkService
	history domain.CheckHistory // nil when no history backend is configured

	healthChecks []HealthCheck
	startTime    time.Time
}

// NewServer wires routes and middleware. history may be nil; the /history
// route then reports that no backend is configured.
func NewServer(cfg *config.Config, checks checkService, history domain.CheckHistory, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		checks:       checks,
		history:      history,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

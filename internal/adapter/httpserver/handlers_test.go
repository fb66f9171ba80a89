package httpserver

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/platform/config"
	apperrors "github.com/mindvr/yt-live-monitor/internal/platform/errors"
)

const testChannelID = "UCj-Xm8j6WBgKY8OG7s9r2vQ"

type mockCheckService struct {
	checkFn   func(ctx context.Context, input string) domain.CheckResult
	resolveFn func(ctx context.Context, input string) (domain.ChannelID, error)
}

func (m *mockCheckService) Check(ctx context.Context, input string) domain.CheckResult {
	if m.checkFn != nil {
		return m.checkFn(ctx, input)
	}
	return domain.CheckResult{ChannelID: testChannelID, CheckedAt: "2025-03-01T12:00:00Z"}
}

func (m *mockCheckService) ResolveChannelID(ctx context.Context, input string) (domain.ChannelID, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, input)
	}
	return testChannelID, nil
}

type mockCheckHistory struct {
	recentFn func(ctx context.Context, limit int) ([]domain.CheckResult, error)
}

func (m *mockCheckHistory) Record(context.Context, domain.CheckResult) error {
	return nil
}

func (m *mockCheckHistory) Recent(ctx context.Context, limit int) ([]domain.CheckResult, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, limit)
	}
	return nil, nil
}

func newTestServer(t *testing.T, checks checkService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    &config.Config{Port: "8080"},
		checks:    checks,
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func withHistory(history domain.CheckHistory) func(*Server) {
	return func(s *Server) { s.history = history }
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) { s.healthChecks = checks }
}

func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}

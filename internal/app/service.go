package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/metrics"
)

// CheckService is the orchestration boundary: the one place where resolver
// failures are reduced to data in the result envelope. Nothing signals past
// a Check call.
type CheckService struct {
	resolver domain.Resolver
	checker  domain.LiveChecker
	history  domain.CheckHistory // nil when no history backend is configured
	clock    clockwork.Clock
}

func NewCheckService(resolver domain.Resolver, checker domain.LiveChecker, history domain.CheckHistory, clock clockwork.Clock) *CheckService {
	return &CheckService{
		resolver: resolver,
		checker:  checker,
		history:  history,
		clock:    clock,
	}
}

// Check resolves input to a channel ID and inspects the channel's live page.
// The returned envelope always carries checked_at (UTC, captured at check
// start) and either channel_id or the raw input under channel_id_or_url.
func (s *CheckService) Check(ctx context.Context, input string) domain.CheckResult {
	started := s.clock.Now()
	result := domain.CheckResult{
		CheckedAt: started.UTC().Format(time.RFC3339),
	}

	id, err := s.resolver.ResolveChannelID(ctx, input)
	if err != nil {
		result.ChannelIDOrURL = input
		result.Error = err.Error()
		s.finish(ctx, result, started)
		return result
	}
	result.ChannelID = id.String()

	status := s.checker.CheckLive(ctx, id)
	result.IsLive = status.IsLive
	result.LivestreamURL = status.LivestreamURL
	result.Title = status.Title
	result.Error = status.Err

	s.finish(ctx, result, started)
	return result
}

// ResolveChannelID exposes the companion identifier-only operation.
func (s *CheckService) ResolveChannelID(ctx context.Context, input string) (domain.ChannelID, error) {
	return s.resolver.ResolveChannelID(ctx, input)
}

func (s *CheckService) finish(ctx context.Context, result domain.CheckResult, started time.Time) {
	metrics.ChecksTotal.WithLabelValues(outcome(result)).Inc()
	metrics.CheckDuration.Observe(s.clock.Since(started).Seconds())

	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, result); err != nil {
		slog.WarnContext(ctx, "Failed to record check", "channel_id", result.ChannelID, "error", err)
	}
}

func outcome(result domain.CheckResult) string {
	switch {
	case result.Error != "":
		return "error"
	case result.IsLive:
		return "live"
	default:
		return "not_live"
	}
}

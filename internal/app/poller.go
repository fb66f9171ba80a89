package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/metrics"
	"github.com/mindvr/yt-live-monitor/internal/platform/correlation"
)

// Poller periodically checks the monitored channel and pushes a notification
// when a new broadcast appears. With no monitored channel configured every
// run is a no-op; the announcement store keeps a stream that stays live
// across intervals from being announced more than once.
type Poller struct {
	checks    *CheckService
	notifier  domain.Notifier
	announced domain.AnnouncementStore
	channelID domain.ChannelID
	interval  time.Duration
	clock     clockwork.Clock
}

func NewPoller(checks *CheckService, notifier domain.Notifier, announced domain.AnnouncementStore, channelID domain.ChannelID, interval time.Duration, clock clockwork.Clock) *Poller {
	return &Poller{
		checks:    checks,
		notifier:  notifier,
		announced: announced,
		channelID: channelID,
		interval:  interval,
		clock:     clock,
	}
}

// Run checks once immediately, then on every interval tick until ctx is
// cancelled. Individual run failures never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	slog.Info("Poller started", "channel_id", p.channelID, "interval", p.interval)

	p.runOnce(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Poller stopped", "reason", ctx.Err())
			return
		case <-ticker.Chan():
			p.runOnce(ctx)
		}
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	if p.channelID == "" {
		metrics.PollRunsTotal.WithLabelValues("skipped").Inc()
		return
	}

	ctx = correlation.WithID(ctx, correlation.NewID())
	slog.InfoContext(ctx, "Checking channel", "channel_id", p.channelID)

	result := p.checks.Check(ctx, p.channelID.String())

	if result.Error != "" {
		metrics.PollRunsTotal.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "Check failed", "channel_id", p.channelID, "error", result.Error)
		p.notify(ctx, "error", func() error {
			return p.notifier.NotifyError(ctx, result.Error)
		})
		return
	}

	metrics.PollRunsTotal.WithLabelValues("ok").Inc()

	if !result.IsLive || result.LivestreamURL == "" || result.Title == "" {
		return
	}

	last, err := p.announced.LastAnnounced(ctx, p.channelID)
	if err != nil {
		slog.WarnContext(ctx, "Announcement lookup failed", "channel_id", p.channelID, "error", err)
		return
	}
	if last == result.LivestreamURL {
		slog.DebugContext(ctx, "Broadcast already announced", "livestream_url", result.LivestreamURL)
		return
	}

	slog.InfoContext(ctx, "New broadcast detected", "livestream_url", result.LivestreamURL, "title", result.Title)
	p.notify(ctx, "live", func() error {
		return p.notifier.NotifyLiveStream(ctx, result.LivestreamURL, result.Title)
	})

	if err := p.announced.SetLastAnnounced(ctx, p.channelID, result.LivestreamURL); err != nil {
		slog.WarnContext(ctx, "Failed to store announcement", "channel_id", p.channelID, "error", err)
	}
}

func (p *Poller) notify(ctx context.Context, kind string, send func() error) {
	if err := send(); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "error").Inc()
		slog.ErrorContext(ctx, "Notification failed", "kind", kind, "error", err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues(kind, "ok").Inc()
}

package domain

import "context"

// Resolver turns arbitrary channel input (raw ID, URL, handle) into a
// canonical ChannelID. Failures are *ResolutionError values.
type Resolver interface {
	ResolveChannelID(ctx context.Context, input string) (ChannelID, error)
}

// LiveChecker inspects a channel's live page. It never fails by signaling;
// every failure is folded into the returned status.
type LiveChecker interface {
	CheckLive(ctx context.Context, id ChannelID) LiveStatus
}

// Notifier delivers plain-text messages to an external sink.
type Notifier interface {
	NotifyLiveStream(ctx context.Context, livestreamURL, title string) error
	NotifyError(ctx context.Context, message string) error
}

// AnnouncementStore remembers the most recently announced broadcast per
// channel so the poller notifies once per new broadcast rather than on
// every interval while a stream stays live.
type AnnouncementStore interface {
	LastAnnounced(ctx context.Context, id ChannelID) (string, error)
	SetLastAnnounced(ctx context.Context, id ChannelID, livestreamURL string) error
}

// CheckHistory records completed checks and serves the most recent ones.
type CheckHistory interface {
	Record(ctx context.Context, result CheckResult) error
	Recent(ctx context.Context, limit int) ([]CheckResult, error)
}

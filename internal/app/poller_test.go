package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

const testWatchURL = "https://www.youtube.com/watch?v=czoEAKX9aaM"

type mockNotifier struct {
	mu      sync.Mutex
	streams []string
	errors  []string
}

func (m *mockNotifier) NotifyLiveStream(_ context.Context, url, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, url)
	return nil
}

func (m *mockNotifier) NotifyError(_ context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message)
	return nil
}

func (m *mockNotifier) streamCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.streams)
}

func (m *mockNotifier) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.errors)
}

func newTestPoller(checker *mockChecker, notifier *mockNotifier) *Poller {
	clock := clockwork.NewFakeClock()
	checks := NewCheckService(&mockResolver{id: testChannelID}, checker, nil, clock)
	return NewPoller(checks, notifier, NewMemoryAnnouncementStore(), testChannelID, time.Minute, clock)
}

func TestRunOnce_NoMonitoredChannel(t *testing.T) {
	checker := &mockChecker{}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.channelID = ""
	poller.runOnce(context.Background())

	assert.Equal(t, 0, checker.callCount(), "no check without a monitored channel")
	assert.Equal(t, 0, notifier.streamCount())
}

func TestRunOnce_NewBroadcastNotifiesOnce(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{
		IsLive:        true,
		LivestreamURL: testWatchURL,
		Title:         "Morning Show",
	}}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.runOnce(context.Background())

	require.Equal(t, 1, notifier.streamCount())
	assert.Equal(t, testWatchURL, notifier.streams[0])

	// Same broadcast on the next run stays silent.
	poller.runOnce(context.Background())
	assert.Equal(t, 1, notifier.streamCount())
}

func TestRunOnce_NewBroadcastAfterPrevious(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{
		IsLive:        true,
		LivestreamURL: testWatchURL,
		Title:         "Morning Show",
	}}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.runOnce(context.Background())

	checker.mu.Lock()
	checker.status.LivestreamURL = "https://www.youtube.com/watch?v=aaaaaaaaaaa"
	checker.mu.Unlock()

	poller.runOnce(context.Background())

	require.Equal(t, 2, notifier.streamCount())
	assert.Equal(t, "https://www.youtube.com/watch?v=aaaaaaaaaaa", notifier.streams[1])
}

func TestRunOnce_NotLive(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{}}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.runOnce(context.Background())

	assert.Equal(t, 1, checker.callCount())
	assert.Equal(t, 0, notifier.streamCount())
	assert.Equal(t, 0, notifier.errorCount())
}

func TestRunOnce_MissingTitleSuppressesNotification(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{
		IsLive:        true,
		LivestreamURL: testWatchURL,
	}}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.runOnce(context.Background())

	assert.Equal(t, 0, notifier.streamCount())
}

func TestRunOnce_CheckErrorNotifies(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{Err: "http 503 fetching live page"}}
	notifier := &mockNotifier{}

	poller := newTestPoller(checker, notifier)
	poller.runOnce(context.Background())

	require.Equal(t, 1, notifier.errorCount())
	assert.Equal(t, "http 503 fetching live page", notifier.errors[0])
	assert.Equal(t, 0, notifier.streamCount())
}

func TestRun_ChecksImmediatelyAndOnTicks(t *testing.T) {
	checker := &mockChecker{status: domain.LiveStatus{}}
	notifier := &mockNotifier{}

	clock := clockwork.NewFakeClock()
	checks := NewCheckService(&mockResolver{id: testChannelID}, checker, nil, clock)
	poller := NewPoller(checks, notifier, NewMemoryAnnouncementStore(), testChannelID, time.Minute, clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, 1, checker.callCount(), "first check runs before the first tick")

	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool {
		return checker.callCount() == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

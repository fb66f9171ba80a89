package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

const testChannelID = "UCj-Xm8j6WBgKY8OG7s9r2vQ"

// --- Mock implementations ---

type mockResolver struct {
	mu    sync.Mutex
	calls int
	id    domain.ChannelID
	err   error
}

func (m *mockResolver) ResolveChannelID(_ context.Context, _ string) (domain.ChannelID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.id, m.err
}

type mockChecker struct {
	mu     sync.Mutex
	calls  int
	status domain.LiveStatus
}

func (m *mockChecker) CheckLive(_ context.Context, _ domain.ChannelID) domain.LiveStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.status
}

func (m *mockChecker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockHistory struct {
	mu       sync.Mutex
	recorded []domain.CheckResult
	err      error
}

func (m *mockHistory) Record(_ context.Context, result domain.CheckResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, result)
	return m.err
}

func (m *mockHistory) Recent(_ context.Context, _ int) ([]domain.CheckResult, error) {
	return nil, nil
}

// --- Tests ---

func TestCheck_Live(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	resolver := &mockResolver{id: testChannelID}
	checker := &mockChecker{status: domain.LiveStatus{
		IsLive:        true,
		LivestreamURL: "https://www.youtube.com/watch?v=czoEAKX9aaM",
		Title:         "Morning Show",
	}}

	svc := NewCheckService(resolver, checker, nil, clock)
	result := svc.Check(context.Background(), testChannelID)

	assert.Equal(t, testChannelID, result.ChannelID)
	assert.Empty(t, result.ChannelIDOrURL)
	assert.True(t, result.IsLive)
	assert.Equal(t, "https://www.youtube.com/watch?v=czoEAKX9aaM", result.LivestreamURL)
	assert.Equal(t, "Morning Show", result.Title)
	assert.Empty(t, result.Error)
	assert.Equal(t, "2025-03-01T12:00:00Z", result.CheckedAt)
}

func TestCheck_NotLive(t *testing.T) {
	resolver := &mockResolver{id: testChannelID}
	checker := &mockChecker{status: domain.LiveStatus{}}

	svc := NewCheckService(resolver, checker, nil, clockwork.NewFakeClock())
	result := svc.Check(context.Background(), testChannelID)

	assert.Equal(t, testChannelID, result.ChannelID)
	assert.False(t, result.IsLive)
	assert.Empty(t, result.LivestreamURL)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Error)
}

func TestCheck_ResolutionFailure(t *testing.T) {
	resolver := &mockResolver{err: domain.NewResolutionError("???", errors.New("could not parse channel ID"))}
	checker := &mockChecker{}

	svc := NewCheckService(resolver, checker, nil, clockwork.NewFakeClock())
	result := svc.Check(context.Background(), "???")

	assert.Empty(t, result.ChannelID)
	assert.Equal(t, "???", result.ChannelIDOrURL, "failed resolution echoes the raw input")
	assert.False(t, result.IsLive)
	assert.NotEmpty(t, result.Error)
	assert.NotEmpty(t, result.CheckedAt)
	assert.Equal(t, 0, checker.callCount(), "no live check after failed resolution")
}

func TestCheck_DetectionError(t *testing.T) {
	resolver := &mockResolver{id: testChannelID}
	checker := &mockChecker{status: domain.LiveStatus{Err: "http 503 fetching live page"}}

	svc := NewCheckService(resolver, checker, nil, clockwork.NewFakeClock())
	result := svc.Check(context.Background(), testChannelID)

	assert.Equal(t, testChannelID, result.ChannelID)
	assert.False(t, result.IsLive)
	assert.Empty(t, result.LivestreamURL)
	assert.Equal(t, "http 503 fetching live page", result.Error)
}

func TestCheck_RecordsHistory(t *testing.T) {
	resolver := &mockResolver{id: testChannelID}
	checker := &mockChecker{status: domain.LiveStatus{}}
	history := &mockHistory{}

	svc := NewCheckService(resolver, checker, history, clockwork.NewFakeClock())
	svc.Check(context.Background(), testChannelID)

	require.Len(t, history.recorded, 1)
	assert.Equal(t, testChannelID, history.recorded[0].ChannelID)
}

func TestCheck_HistoryFailureDoesNotAffectResult(t *testing.T) {
	resolver := &mockResolver{id: testChannelID}
	checker := &mockChecker{status: domain.LiveStatus{}}
	history := &mockHistory{err: errors.New("db down")}

	svc := NewCheckService(resolver, checker, history, clockwork.NewFakeClock())
	result := svc.Check(context.Background(), testChannelID)

	assert.Equal(t, testChannelID, result.ChannelID)
	assert.Empty(t, result.Error)
}

func TestResolveChannelID_Passthrough(t *testing.T) {
	resolver := &mockResolver{id: testChannelID}

	svc := NewCheckService(resolver, &mockChecker{}, nil, clockwork.NewFakeClock())
	id, err := svc.ResolveChannelID(context.Background(), "@Example")

	require.NoError(t, err)
	assert.Equal(t, domain.ChannelID(testChannelID), id)
	assert.Equal(t, 1, resolver.calls)
}

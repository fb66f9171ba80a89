package app

import (
	"context"
	"sync"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

// MemoryAnnouncementStore keeps last-announced broadcasts in process memory.
// Used in single-instance mode when no Redis backend is configured; state
// does not survive a restart, so the first poll after startup may
// re-announce a still-running broadcast.
type MemoryAnnouncementStore struct {
	mu   sync.Mutex
	last map[domain.ChannelID]string
}

func NewMemoryAnnouncementStore() *MemoryAnnouncementStore {
	return &MemoryAnnouncementStore{
		last: make(map[domain.ChannelID]string),
	}
}

func (s *MemoryAnnouncementStore) LastAnnounced(_ context.Context, id domain.ChannelID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[id], nil
}

func (s *MemoryAnnouncementStore) SetLastAnnounced(_ context.Context, id domain.ChannelID, livestreamURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[id] = livestreamURL
	return nil
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

// Announcements survive restarts for a week; a broadcast rarely outlives
// that, and an expired key only costs one duplicate notification.
const announcementTTL = 7 * 24 * time.Hour

// AnnouncementStore is the Redis-backed domain.AnnouncementStore, used when
// the poller must not re-announce across process restarts or replicas.
type AnnouncementStore struct {
	client *redis.Client
}

func NewAnnouncementStore(client *redis.Client) *AnnouncementStore {
	return &AnnouncementStore{client: client}
}

// keyFor uses {...} so Redis Cluster users get stable hash slotting per channel.
func keyFor(id domain.ChannelID) string {
	return fmt.Sprintf("ytlive:last_announced:{%s}", id)
}

func (s *AnnouncementStore) LastAnnounced(ctx context.Context, id domain.ChannelID) (string, error) {
	val, err := s.client.Get(ctx, keyFor(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis GET %s: %w", keyFor(id), err)
	}
	return val, nil
}

func (s *AnnouncementStore) SetLastAnnounced(ctx context.Context, id domain.ChannelID, livestreamURL string) error {
	if err := s.client.Set(ctx, keyFor(id), livestreamURL, announcementTTL).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", keyFor(id), err)
	}
	return nil
}

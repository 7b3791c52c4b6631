package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

type memoryEntry struct {
	videos    []model.Video
	expiresAt time.Time
}

// MemorySnapshotCache keeps aggregation snapshots in process memory. It is
// the default when no Redis instance is configured.
type MemorySnapshotCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// WithClock overrides the time source (tests).
func (c *MemorySnapshotCache) WithClock(now func() time.Time) *MemorySnapshotCache {
	c.now = now
	return c
}

func (c *MemorySnapshotCache) Get(ctx context.Context, key string) ([]model.Video, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	videos := make([]model.Video, len(entry.videos))
	copy(videos, entry.videos)
	return videos, true, nil
}

func (c *MemorySnapshotCache) Set(ctx context.Context, key string, videos []model.Video, ttl time.Duration) error {
	stored := make([]model.Video, len(videos))
	copy(stored, videos)

	c.mu.Lock()
	c.entries[key] = memoryEntry{videos: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemorySnapshotCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

// ISnapshotCache stores aggregation results keyed by a watchlist fingerprint.
// Clear drops every entry at once: adding a channel or an explicit refresh
// invalidates the whole cache, not just the changed key.
type ISnapshotCache interface {
	// Get returns the cached video set for key, and whether it was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]model.Video, bool, error)
	// Set stores the video set under key with a TTL from now.
	Set(ctx context.Context, key string, videos []model.Video, ttl time.Duration) error
	// Clear removes all cached snapshots.
	Clear(ctx context.Context) error
}

package repository

import (
	"context"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

// IWatchlistStore persists folders and channels across restarts. The
// in-memory session state stays authoritative; the store only seeds it at
// startup and records adds.
type IWatchlistStore interface {
	Load(ctx context.Context) ([]model.Folder, []model.Channel, error)
	SaveFolder(ctx context.Context, folder model.Folder) error
	SaveChannel(ctx context.Context, channel model.Channel) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/repository"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/logger"
)

// DefaultFolderName is the folder synthesized when the first channel is added
// to an empty watchlist.
const DefaultFolderName = "Default"

// IWatchlistUseCase manages the session's folders and channels.
type IWatchlistUseCase interface {
	Folders() []model.Folder
	Channels() []model.Channel
	AddFolder(ctx context.Context, name string) (model.Folder, error)
	EnsureDefaultFolder(ctx context.Context) model.Folder
	ResolveAndAddChannel(ctx context.Context, identifier, folderID string) (model.Channel, error)
}

// WatchlistUseCase holds the channel and folder collections for the session.
// State lives in memory; the optional store seeds it at startup and records
// adds, and the snapshot cache is cleared whenever the channel set changes.
type WatchlistUseCase struct {
	mu       sync.RWMutex
	folders  []model.Folder
	channels []model.Channel

	youtube repository.IYouTube
	store   repository.IWatchlistStore
	cache   repository.ISnapshotCache
}

func NewWatchlistUseCase(youtube repository.IYouTube) *WatchlistUseCase {
	return &WatchlistUseCase{youtube: youtube}
}

// WithStore enables durable persistence of the watchlist (fluent).
func (u *WatchlistUseCase) WithStore(store repository.IWatchlistStore) *WatchlistUseCase {
	u.store = store
	return u
}

// WithSnapshotCache wires the cache cleared on channel adds (fluent).
func (u *WatchlistUseCase) WithSnapshotCache(cache repository.ISnapshotCache) *WatchlistUseCase {
	u.cache = cache
	return u
}

// Seed replaces the in-memory state, typically from the store at startup.
func (u *WatchlistUseCase) Seed(folders []model.Folder, channels []model.Channel) {
	u.mu.Lock()
	u.folders = append([]model.Folder(nil), folders...)
	u.channels = append([]model.Channel(nil), channels...)
	u.mu.Unlock()
}

// Folders returns a read-only snapshot of the folder collection.
func (u *WatchlistUseCase) Folders() []model.Folder {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]model.Folder(nil), u.folders...)
}

// Channels returns a read-only snapshot of the channel collection.
func (u *WatchlistUseCase) Channels() []model.Channel {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]model.Channel(nil), u.channels...)
}

// AddFolder creates a folder with a freshly generated id.
func (u *WatchlistUseCase) AddFolder(ctx context.Context, name string) (model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Folder{}, fmt.Errorf("folder name is required")
	}

	folder := model.Folder{ID: uuid.NewString(), Name: name}
	u.mu.Lock()
	u.folders = append(u.folders, folder)
	u.mu.Unlock()

	u.persistFolder(ctx, folder)
	return folder, nil
}

// EnsureDefaultFolder creates the "Default" folder when no folder exists and
// returns the first folder otherwise. Keeping folder bootstrapping out of the
// resolve step leaves channel resolution free of folder mutation.
func (u *WatchlistUseCase) EnsureDefaultFolder(ctx context.Context) model.Folder {
	u.mu.Lock()
	folder, created := u.ensureDefaultFolderLocked()
	u.mu.Unlock()

	if created {
		u.persistFolder(ctx, folder)
	}
	return folder
}

func (u *WatchlistUseCase) ensureDefaultFolderLocked() (model.Folder, bool) {
	if len(u.folders) > 0 {
		return u.folders[0], false
	}
	folder := model.Folder{ID: uuid.NewString(), Name: DefaultFolderName}
	u.folders = append(u.folders, folder)
	return folder, true
}

// ResolveAndAddChannel resolves a free-form identifier to a channel record,
// appends it to the watchlist, and clears the snapshot cache. folderID
// overrides the default folder assignment when it names an existing folder.
func (u *WatchlistUseCase) ResolveAndAddChannel(ctx context.Context, identifier, folderID string) (model.Channel, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.Channel{}, fmt.Errorf("channel identifier is required")
	}
	if u.youtube == nil {
		return model.Channel{}, fmt.Errorf("%w: no API credential configured", model.ErrAPI)
	}

	info, err := u.resolveChannelInfo(ctx, identifier)
	if err != nil {
		return model.Channel{}, err
	}

	u.mu.Lock()
	for _, existing := range u.channels {
		if existing.ID == info.ID {
			u.mu.Unlock()
			return model.Channel{}, fmt.Errorf("%w: %s", model.ErrDuplicateChannel, existing.Title)
		}
	}

	defaultFolder, createdDefault := u.ensureDefaultFolderLocked()
	targetFolderID := defaultFolder.ID
	if folderID != "" {
		for _, f := range u.folders {
			if f.ID == folderID {
				targetFolderID = f.ID
				break
			}
		}
	}

	channel := model.Channel{
		ID:                info.ID,
		Title:             info.Title,
		Handle:            info.Handle,
		ThumbnailURL:      info.ThumbnailURL,
		UploadsPlaylistID: info.UploadsPlaylistID,
		FolderID:          targetFolderID,
	}
	u.channels = append(u.channels, channel)
	u.mu.Unlock()

	if createdDefault {
		u.persistFolder(ctx, defaultFolder)
	}
	u.persistChannel(ctx, channel)

	if u.cache != nil {
		if err := u.cache.Clear(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to clear snapshot cache after channel add")
		}
	}
	return channel, nil
}

// resolveChannelInfo looks the identifier up by handle or id, with a single
// name-search fallback hop. It never mutates watchlist state.
func (u *WatchlistUseCase) resolveChannelInfo(ctx context.Context, identifier string) (*dto.ChannelInfo, error) {
	info, err := u.lookup(ctx, identifier)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, model.ErrChannelNotFound) {
		return nil, err
	}

	channelID, err := u.youtube.SearchChannelID(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return u.youtube.ChannelByID(ctx, channelID)
}

func (u *WatchlistUseCase) lookup(ctx context.Context, identifier string) (*dto.ChannelInfo, error) {
	if strings.HasPrefix(identifier, "@") {
		return u.youtube.ChannelByHandle(ctx, identifier)
	}
	return u.youtube.ChannelByID(ctx, identifier)
}

func (u *WatchlistUseCase) persistFolder(ctx context.Context, folder model.Folder) {
	if u.store == nil {
		return
	}
	if err := u.store.SaveFolder(ctx, folder); err != nil {
		logger.GetLogger().WithField("error", err).WithField("folder", folder.Name).Warn("Failed to persist folder")
	}
}

func (u *WatchlistUseCase) persistChannel(ctx context.Context, channel model.Channel) {
	if u.store == nil {
		return
	}
	if err := u.store.SaveChannel(ctx, channel); err != nil {
		logger.GetLogger().WithField("error", err).WithField("channel", channel.Title).Warn("Failed to persist channel")
	}
}

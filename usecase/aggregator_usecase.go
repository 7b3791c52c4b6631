package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/repository"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/logger"
)

// IAggregatorUseCase produces the recent-video set for a channel list.
type IAggregatorUseCase interface {
	RecentVideos(ctx context.Context, channels []model.Channel) []model.Video
	InvalidateCache(ctx context.Context)
}

// AggregatorUseCase fetches, windows and classifies recent uploads across the
// watchlist. Channels are fetched concurrently with a bounded group; a
// failure in one channel empties only that channel's contribution.
type AggregatorUseCase struct {
	youtube     repository.IYouTube
	cache       repository.ISnapshotCache
	credential  string
	window      time.Duration
	maxUploads  int64
	cacheTTL    time.Duration
	concurrency int
	now         func() time.Time
}

// Options tunes the aggregation pipeline. Zero values fall back to the
// defaults: 7-day window, 20 uploads, 600s TTL, 4 workers.
type Options struct {
	Window      time.Duration
	MaxUploads  int64
	CacheTTL    time.Duration
	Concurrency int
}

func NewAggregatorUseCase(youtube repository.IYouTube, cache repository.ISnapshotCache, credential string, opts Options) *AggregatorUseCase {
	if opts.Window == 0 {
		opts.Window = 7 * 24 * time.Hour
	}
	if opts.MaxUploads == 0 {
		opts.MaxUploads = 20
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 600 * time.Second
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = 4
	}
	return &AggregatorUseCase{
		youtube:     youtube,
		cache:       cache,
		credential:  credential,
		window:      opts.Window,
		maxUploads:  opts.MaxUploads,
		cacheTTL:    opts.CacheTTL,
		concurrency: opts.Concurrency,
		now:         time.Now,
	}
}

// WithClock overrides the time source (tests).
func (u *AggregatorUseCase) WithClock(now func() time.Time) *AggregatorUseCase {
	u.now = now
	return u
}

// RecentVideos returns every video published within the trailing window
// across the given channels. Results are cached per channel-set fingerprint;
// within the TTL no network call is made for an identical watchlist.
func (u *AggregatorUseCase) RecentVideos(ctx context.Context, channels []model.Channel) []model.Video {
	if len(channels) == 0 || u.youtube == nil {
		return nil
	}

	key := u.snapshotKey(channels)
	if u.cache != nil {
		videos, ok, err := u.cache.Get(ctx, key)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Snapshot cache read failed")
		} else if ok {
			return videos
		}
	}

	cutoff := u.now().UTC().Add(-u.window)

	var mu sync.Mutex
	var all []model.Video

	g := new(errgroup.Group)
	g.SetLimit(u.concurrency)
	for _, channel := range channels {
		channel := channel
		g.Go(func() error {
			videos, err := u.fetchChannel(ctx, channel, cutoff)
			if err != nil {
				// Per-channel isolation: log and contribute nothing.
				logger.GetLogger().
					WithField("channel", channel.Title).
					WithField("error", err).
					Warn("Skipping channel after fetch failure")
				return nil
			}
			mu.Lock()
			all = append(all, videos...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if u.cache != nil {
		if err := u.cache.Set(ctx, key, all, u.cacheTTL); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Snapshot cache write failed")
		}
	}
	return all
}

// InvalidateCache drops every cached snapshot (explicit refresh).
func (u *AggregatorUseCase) InvalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Clear(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to clear snapshot cache")
	}
}

// fetchChannel collects one channel's in-window uploads. Only the most recent
// maxUploads feed entries are inspected, so a channel publishing more than
// that within the window loses the excess - a documented limitation.
func (u *AggregatorUseCase) fetchChannel(ctx context.Context, channel model.Channel, cutoff time.Time) ([]model.Video, error) {
	items, err := u.youtube.PlaylistItems(ctx, channel.UploadsPlaylistID, u.maxUploads)
	if err != nil {
		return nil, err
	}

	var videoIDs []string
	for _, item := range items {
		if !item.PublishedAt.UTC().Before(cutoff) {
			videoIDs = append(videoIDs, item.VideoID)
		}
	}
	if len(videoIDs) == 0 {
		return nil, nil
	}

	details, err := u.youtube.VideoDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(details))
	for _, detail := range details {
		seconds, perr := ParseISODuration(detail.Duration)
		if perr != nil {
			// Malformed duration drops the record, not the channel.
			logger.GetLogger().
				WithField("video", detail.ID).
				WithField("error", perr).
				Warn("Dropping video with unparseable duration")
			continue
		}
		videos = append(videos, model.Video{
			ID:              detail.ID,
			ChannelID:       channel.ID,
			ChannelTitle:    channel.Title,
			Title:           detail.Title,
			ThumbnailURL:    detail.ThumbnailURL,
			PublishedAt:     detail.PublishedAt,
			URL:             fmt.Sprintf("https://www.youtube.com/watch?v=%s", detail.ID),
			ViewCount:       detail.ViewCount,
			LikeCount:       detail.LikeCount,
			CommentCount:    detail.CommentCount,
			DurationSeconds: seconds,
			IsShort:         seconds < 60,
		})
	}
	return videos, nil
}

// snapshotKey fingerprints the channel set and credential. Channel order is
// irrelevant: ids are sorted before hashing.
func (u *AggregatorUseCase) snapshotKey(channels []model.Channel) string {
	ids := make([]string, 0, len(channels))
	for _, c := range channels {
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)

	sum := sha256.Sum256([]byte(u.credential + "|" + strings.Join(ids, ",")))
	return hex.EncodeToString(sum[:])
}

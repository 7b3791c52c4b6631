package repository

import (
	"context"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
)

// IYouTube is the narrow surface of the YouTube Data API the dashboard
// consumes. Lookups that match nothing return model.ErrChannelNotFound;
// transport, authorization and quota failures wrap model.ErrAPI.
type IYouTube interface {
	// ChannelByHandle resolves a "@handle" via channels.list(forHandle).
	ChannelByHandle(ctx context.Context, handle string) (*dto.ChannelInfo, error)
	// ChannelByID resolves a raw channel id via channels.list(id).
	ChannelByID(ctx context.Context, id string) (*dto.ChannelInfo, error)
	// SearchChannelID returns the best-match channel id for a free-form
	// query, restricted to channel-type results.
	SearchChannelID(ctx context.Context, query string) (string, error)
	// PlaylistItems returns up to maxResults recent entries of an uploads
	// playlist, in API order.
	PlaylistItems(ctx context.Context, playlistID string, maxResults int64) ([]dto.PlaylistItem, error)
	// VideoDetails batch-fetches snippet, statistics and content details
	// for the given video ids in a single request.
	VideoDetails(ctx context.Context, videoIDs []string) ([]dto.VideoDetail, error)
}

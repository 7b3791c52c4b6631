package youtube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/repository"
)

// Client wraps the YouTube Data API v3 behind repository.IYouTube.
type Client struct {
	service *youtube.Service
}

// Config holds the credential for the platform client. APIKey alone is
// sufficient for all read-only dashboard queries; OAuth fields switch the
// client to an authorized transport.
type Config struct {
	APIKey       string `json:"api_key"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewClient creates a YouTube API client. API-key mode is preferred; OAuth
// mode is used when access and refresh tokens are configured.
func NewClient(ctx context.Context, config *Config) (repository.IYouTube, error) {
	if config.AccessToken == "" || config.RefreshToken == "" {
		if config.APIKey == "" {
			return nil, fmt.Errorf("youtube client requires an API key or OAuth tokens")
		}
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{service: service}, nil
	}

	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // force refresh on first use
	}

	httpClient := oauth2Config.Client(ctx, token)
	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// ChannelByHandle resolves a "@handle" via channels.list(forHandle).
func (c *Client) ChannelByHandle(ctx context.Context, handle string) (*dto.ChannelInfo, error) {
	call := c.service.Channels.List([]string{"snippet", "contentDetails"}).ForHandle(handle)
	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: channels.list(forHandle): %v", model.ErrAPI, err)
	}
	if len(response.Items) == 0 {
		return nil, model.ErrChannelNotFound
	}
	return convertChannel(response.Items[0]), nil
}

// ChannelByID resolves a raw channel id via channels.list(id).
func (c *Client) ChannelByID(ctx context.Context, id string) (*dto.ChannelInfo, error) {
	call := c.service.Channels.List([]string{"snippet", "contentDetails"}).Id(id)
	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: channels.list(id): %v", model.ErrAPI, err)
	}
	if len(response.Items) == 0 {
		return nil, model.ErrChannelNotFound
	}
	return convertChannel(response.Items[0]), nil
}

// SearchChannelID returns the top channel-type match for a free-form query.
func (c *Client) SearchChannelID(ctx context.Context, query string) (string, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Type("channel").
		Q(query).
		MaxResults(1)
	response, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: search.list: %v", model.ErrAPI, err)
	}
	if len(response.Items) == 0 {
		return "", model.ErrChannelNotFound
	}
	item := response.Items[0]
	if item.Id != nil && item.Id.ChannelId != "" {
		return item.Id.ChannelId, nil
	}
	if item.Snippet != nil && item.Snippet.ChannelId != "" {
		return item.Snippet.ChannelId, nil
	}
	return "", model.ErrChannelNotFound
}

// PlaylistItems returns up to maxResults recent entries of an uploads
// playlist. Timestamps are parsed from the snippet and normalized to UTC.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, maxResults int64) ([]dto.PlaylistItem, error) {
	call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults)
	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: playlistItems.list: %v", model.ErrAPI, err)
	}

	items := make([]dto.PlaylistItem, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.Snippet == nil {
			continue
		}
		publishedAt, perr := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if perr != nil {
			continue
		}
		items = append(items, dto.PlaylistItem{
			VideoID:     item.ContentDetails.VideoId,
			PublishedAt: publishedAt.UTC(),
		})
	}
	return items, nil
}

// VideoDetails batch-fetches snippet, statistics and content details for the
// given video ids in a single request. Missing statistics default to 0.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]dto.VideoDetail, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...)
	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: videos.list: %v", model.ErrAPI, err)
	}

	details := make([]dto.VideoDetail, 0, len(response.Items))
	for _, video := range response.Items {
		detail, ok := convertVideo(video)
		if !ok {
			continue
		}
		details = append(details, detail)
	}
	return details, nil
}

// convertVideo maps an API video to the detail DTO. Records with a missing
// snippet or content details, or a malformed timestamp, are dropped.
func convertVideo(video *youtube.Video) (dto.VideoDetail, bool) {
	if video.Snippet == nil || video.ContentDetails == nil {
		return dto.VideoDetail{}, false
	}
	publishedAt, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt)
	if err != nil {
		return dto.VideoDetail{}, false
	}

	detail := dto.VideoDetail{
		ID:           video.Id,
		Title:        video.Snippet.Title,
		ThumbnailURL: videoThumbnail(video.Snippet.Thumbnails),
		PublishedAt:  publishedAt.UTC(),
		Duration:     video.ContentDetails.Duration,
	}
	if video.Statistics != nil {
		detail.ViewCount = int64(video.Statistics.ViewCount)
		detail.LikeCount = int64(video.Statistics.LikeCount)
		detail.CommentCount = int64(video.Statistics.CommentCount)
	}
	return detail, true
}

// convertChannel maps an API channel to the resolver DTO. The thumbnail uses
// the "default" variant; the uploads playlist comes from relatedPlaylists.
func convertChannel(channel *youtube.Channel) *dto.ChannelInfo {
	info := &dto.ChannelInfo{ID: channel.Id}
	if channel.Snippet != nil {
		info.Title = channel.Snippet.Title
		info.Handle = channel.Snippet.CustomUrl
		if channel.Snippet.Thumbnails != nil && channel.Snippet.Thumbnails.Default != nil {
			info.ThumbnailURL = channel.Snippet.Thumbnails.Default.Url
		}
	}
	if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil {
		info.UploadsPlaylistID = channel.ContentDetails.RelatedPlaylists.Uploads
	}
	return info
}

// videoThumbnail prefers the medium variant and falls back to default.
func videoThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	if thumbnails.Medium != nil {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil {
		return thumbnails.Default.Url
	}
	return ""
}

package model

import "time"

// Video is a recently published upload with engagement metrics. The video set
// is recomputed wholesale on every aggregation; no video is updated in place.
type Video struct {
	ID              string    `json:"id"`
	ChannelID       string    `json:"channel_id"`
	ChannelTitle    string    `json:"channel_title"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	PublishedAt     time.Time `json:"published_at"`
	URL             string    `json:"url"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	DurationSeconds float64   `json:"duration_seconds"`
	IsShort         bool      `json:"is_short"`
}

// Stats aggregates engagement over a filtered video set.
type Stats struct {
	VideoCount    int   `json:"video_count"`
	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}

// ChannelViews is one row of the per-channel view ranking.
type ChannelViews struct {
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	TotalViews   int64  `json:"total_views"`
}

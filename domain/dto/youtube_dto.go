package dto

import "time"

// ChannelInfo is the normalized result of a channels.list lookup.
type ChannelInfo struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Handle            string `json:"handle,omitempty"`
	ThumbnailURL      string `json:"thumbnail_url"`
	UploadsPlaylistID string `json:"uploads_playlist_id"`
}

// PlaylistItem references one upload in a channel's uploads feed.
type PlaylistItem struct {
	VideoID     string    `json:"video_id"`
	PublishedAt time.Time `json:"published_at"`
}

// VideoDetail carries the snippet, statistics and content details fields the
// dashboard consumes from a videos.list record. Duration stays in ISO-8601
// form ("PT2M45S"); parsing happens in the aggregator.
type VideoDetail struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	Duration     string    `json:"duration"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

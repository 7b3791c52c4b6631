package dto

import "github.com/Idkwii/Cycle-youtube-analytics/domain/model"

// VideoFormat selects short-form, long-form or all videos.
type VideoFormat string

const (
	FormatAll   VideoFormat = "all"
	FormatLong  VideoFormat = "long"
	FormatShort VideoFormat = "short"
)

// ParseVideoFormat maps a query value to a format filter. Unknown or empty
// values fall back to FormatAll.
func ParseVideoFormat(s string) VideoFormat {
	switch VideoFormat(s) {
	case FormatLong:
		return FormatLong
	case FormatShort:
		return FormatShort
	default:
		return FormatAll
	}
}

// Selection is the hierarchical dashboard filter. ChannelID takes precedence
// over FolderID; both empty means all channels.
type Selection struct {
	FolderID  string      `json:"folder_id,omitempty"`
	ChannelID string      `json:"channel_id,omitempty"`
	Format    VideoFormat `json:"format"`
}

// Dashboard states distinguish "nothing configured" from "filters matched
// nothing" so the frontend can render the right empty state.
const (
	DashboardStateOK         = "ok"
	DashboardStateNoAPIKey   = "no_api_key"
	DashboardStateNoChannels = "no_channels"
	DashboardStateEmpty      = "empty"
)

// DashboardRequest carries the query parameters of GET /api/dashboard.
type DashboardRequest struct {
	FolderID  string `form:"folder_id"`
	ChannelID string `form:"channel_id"`
	Format    string `form:"format"`
}

// DashboardResponse is the filtered video set plus aggregates.
type DashboardResponse struct {
	State       string               `json:"state"`
	Videos      []model.Video        `json:"videos"`
	Stats       model.Stats          `json:"stats"`
	TopChannels []model.ChannelViews `json:"top_channels,omitempty"`
}

// AddFolderRequest is the body of POST /api/folders.
type AddFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddChannelRequest is the body of POST /api/channels. Identifier is a handle
// ("@name"), a channel id, or a free-form name resolved via search.
type AddChannelRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	FolderID   string `json:"folder_id"`
}

package model

// Folder is an operator-defined grouping of channels. Purely organizational;
// names are display-only and not required to be unique.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel is a tracked YouTube channel. ID is the platform-assigned channel id
// and is unique across the watchlist.
type Channel struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Handle            string `json:"handle,omitempty"`
	ThumbnailURL      string `json:"thumbnail_url"`
	UploadsPlaylistID string `json:"uploads_playlist_id"`
	FolderID          string `json:"folder_id"`
}

package model

import "errors"

var (
	// ErrChannelNotFound means no channel matched by handle, id or search.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrDuplicateChannel means the channel is already on the watchlist.
	ErrDuplicateChannel = errors.New("channel already tracked")
	// ErrAPI wraps transport, authorization and quota failures from the
	// YouTube Data API.
	ErrAPI = errors.New("youtube api error")
)

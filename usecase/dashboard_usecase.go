package usecase

import (
	"context"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

// IDashboardUseCase assembles the filtered video view for the frontend.
type IDashboardUseCase interface {
	GetDashboard(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardResponse
	Refresh(ctx context.Context)
}

// DashboardUseCase orchestrates aggregation and filtering. It renders a
// distinct state for "no credential", "no channels", "filters matched
// nothing" and "data" so the dashboard never blanks out.
type DashboardUseCase struct {
	watchlist     IWatchlistUseCase
	aggregator    IAggregatorUseCase
	credentialSet bool
	topChannels   int
}

func NewDashboardUseCase(watchlist IWatchlistUseCase, aggregator IAggregatorUseCase, credentialSet bool, topChannels int) *DashboardUseCase {
	if topChannels == 0 {
		topChannels = 5
	}
	return &DashboardUseCase{
		watchlist:     watchlist,
		aggregator:    aggregator,
		credentialSet: credentialSet,
		topChannels:   topChannels,
	}
}

// GetDashboard returns the filtered video set with aggregate statistics. The
// top-channel ranking is computed only for folder-level and global views.
func (u *DashboardUseCase) GetDashboard(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardResponse {
	if req == nil {
		req = &dto.DashboardRequest{}
	}
	resp := &dto.DashboardResponse{Videos: []model.Video{}}

	if !u.credentialSet {
		resp.State = dto.DashboardStateNoAPIKey
		return resp
	}

	channels := u.watchlist.Channels()
	if len(channels) == 0 {
		resp.State = dto.DashboardStateNoChannels
		return resp
	}

	videos := u.aggregator.RecentVideos(ctx, channels)
	sel := dto.Selection{
		FolderID:  req.FolderID,
		ChannelID: req.ChannelID,
		Format:    dto.ParseVideoFormat(req.Format),
	}

	filtered := FilterVideos(videos, channels, sel)
	resp.Videos = filtered
	resp.Stats = ComputeStats(filtered)
	if sel.ChannelID == "" {
		resp.TopChannels = TopChannelsByViews(filtered, u.topChannels)
	}

	if len(filtered) == 0 {
		resp.State = dto.DashboardStateEmpty
	} else {
		resp.State = dto.DashboardStateOK
	}
	return resp
}

// Refresh clears the whole snapshot cache so the next view refetches.
func (u *DashboardUseCase) Refresh(ctx context.Context) {
	u.aggregator.InvalidateCache(ctx)
}

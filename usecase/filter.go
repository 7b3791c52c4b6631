package usecase

import (
	"sort"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

// FilterVideos applies the hierarchical selection to the aggregated video
// set. An explicit channel selection overrides any folder selection; with
// neither set, all channels pass. The result is always a subset of videos.
func FilterVideos(videos []model.Video, channels []model.Channel, sel dto.Selection) []model.Video {
	var inFolder map[string]bool
	if sel.ChannelID == "" && sel.FolderID != "" {
		inFolder = make(map[string]bool)
		for _, c := range channels {
			if c.FolderID == sel.FolderID {
				inFolder[c.ID] = true
			}
		}
	}

	filtered := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if sel.ChannelID != "" {
			if v.ChannelID != sel.ChannelID {
				continue
			}
		} else if inFolder != nil && !inFolder[v.ChannelID] {
			continue
		}

		switch sel.Format {
		case dto.FormatLong:
			if v.IsShort {
				continue
			}
		case dto.FormatShort:
			if !v.IsShort {
				continue
			}
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// ComputeStats sums engagement over a filtered video set. An empty set yields
// all-zero counts.
func ComputeStats(videos []model.Video) model.Stats {
	stats := model.Stats{VideoCount: len(videos)}
	for _, v := range videos {
		stats.TotalViews += v.ViewCount
		stats.TotalLikes += v.LikeCount
		stats.TotalComments += v.CommentCount
	}
	return stats
}

// TopChannelsByViews groups videos by channel, sums views, and returns the
// top limit channels in descending order. Ties break on channel title so the
// ranking is deterministic.
func TopChannelsByViews(videos []model.Video, limit int) []model.ChannelViews {
	totals := make(map[string]*model.ChannelViews)
	for _, v := range videos {
		entry, ok := totals[v.ChannelID]
		if !ok {
			entry = &model.ChannelViews{ChannelID: v.ChannelID, ChannelTitle: v.ChannelTitle}
			totals[v.ChannelID] = entry
		}
		entry.TotalViews += v.ViewCount
	}

	ranking := make([]model.ChannelViews, 0, len(totals))
	for _, entry := range totals {
		ranking = append(ranking, *entry)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalViews != ranking[j].TotalViews {
			return ranking[i].TotalViews > ranking[j].TotalViews
		}
		return ranking[i].ChannelTitle < ranking[j].ChannelTitle
	})
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

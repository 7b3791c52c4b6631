package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

func filterFixture() ([]model.Video, []model.Channel) {
	channels := []model.Channel{
		{ID: "C1", Title: "Alpha", FolderID: "F1"},
		{ID: "C2", Title: "Beta", FolderID: "F1"},
		{ID: "C3", Title: "Gamma", FolderID: "F2"},
	}
	videos := []model.Video{
		{ID: "v1", ChannelID: "C1", ChannelTitle: "Alpha", DurationSeconds: 45, IsShort: true, ViewCount: 100, LikeCount: 10, CommentCount: 1},
		{ID: "v2", ChannelID: "C1", ChannelTitle: "Alpha", DurationSeconds: 300, IsShort: false, ViewCount: 200, LikeCount: 20, CommentCount: 2},
		{ID: "v3", ChannelID: "C2", ChannelTitle: "Beta", DurationSeconds: 59.999, IsShort: true, ViewCount: 400, LikeCount: 40, CommentCount: 4},
		{ID: "v4", ChannelID: "C3", ChannelTitle: "Gamma", DurationSeconds: 60, IsShort: false, ViewCount: 800, LikeCount: 80, CommentCount: 8},
	}
	return videos, channels
}

func TestFilterVideos_IsSubset(t *testing.T) {
	videos, channels := filterFixture()
	known := make(map[string]bool)
	for _, v := range videos {
		known[v.ID] = true
	}

	selections := []dto.Selection{
		{Format: dto.FormatAll},
		{Format: dto.FormatShort},
		{Format: dto.FormatLong},
		{FolderID: "F1", Format: dto.FormatAll},
		{ChannelID: "C2", Format: dto.FormatShort},
		{FolderID: "F2", ChannelID: "C1", Format: dto.FormatAll},
	}
	for _, sel := range selections {
		for _, v := range usecase.FilterVideos(videos, channels, sel) {
			assert.True(t, known[v.ID], "filter must not invent videos")
		}
	}
}

func TestFilterVideos_FormatsAreMutuallyExclusive(t *testing.T) {
	videos, channels := filterFixture()

	long := usecase.FilterVideos(videos, channels, dto.Selection{Format: dto.FormatLong})
	shortOfLong := usecase.FilterVideos(long, channels, dto.Selection{Format: dto.FormatShort})
	assert.Empty(t, shortOfLong)

	short := usecase.FilterVideos(videos, channels, dto.Selection{Format: dto.FormatShort})
	assert.Len(t, long, 2)
	assert.Len(t, short, 2)
}

func TestFilterVideos_ShortBoundary(t *testing.T) {
	videos, channels := filterFixture()

	short := usecase.FilterVideos(videos, channels, dto.Selection{Format: dto.FormatShort})
	ids := make([]string, 0, len(short))
	for _, v := range short {
		ids = append(ids, v.ID)
	}
	// 59.999s is short; exactly 60s is long.
	assert.ElementsMatch(t, []string{"v1", "v3"}, ids)
}

func TestFilterVideos_FolderSelection(t *testing.T) {
	videos, channels := filterFixture()

	filtered := usecase.FilterVideos(videos, channels, dto.Selection{FolderID: "F1", Format: dto.FormatAll})
	assert.Len(t, filtered, 3)
	for _, v := range filtered {
		assert.Contains(t, []string{"C1", "C2"}, v.ChannelID)
	}
}

func TestFilterVideos_ChannelTakesPrecedenceOverFolder(t *testing.T) {
	videos, channels := filterFixture()

	// Folder F2 does not contain C1; the channel selection must win.
	filtered := usecase.FilterVideos(videos, channels, dto.Selection{FolderID: "F2", ChannelID: "C1", Format: dto.FormatAll})
	assert.Len(t, filtered, 2)
	for _, v := range filtered {
		assert.Equal(t, "C1", v.ChannelID)
	}
}

func TestFilterVideos_UnknownFolderMatchesNothing(t *testing.T) {
	videos, channels := filterFixture()
	filtered := usecase.FilterVideos(videos, channels, dto.Selection{FolderID: "missing", Format: dto.FormatAll})
	assert.Empty(t, filtered)
}

func TestComputeStats(t *testing.T) {
	videos, _ := filterFixture()

	stats := usecase.ComputeStats(videos)
	assert.Equal(t, 4, stats.VideoCount)
	assert.Equal(t, int64(1500), stats.TotalViews)
	assert.Equal(t, int64(150), stats.TotalLikes)
	assert.Equal(t, int64(15), stats.TotalComments)
}

func TestComputeStats_EmptySet(t *testing.T) {
	stats := usecase.ComputeStats(nil)
	assert.Equal(t, model.Stats{}, stats)
}

func TestTopChannelsByViews(t *testing.T) {
	videos, _ := filterFixture()

	ranking := usecase.TopChannelsByViews(videos, 5)
	assert.Len(t, ranking, 3)
	assert.Equal(t, "C3", ranking[0].ChannelID)
	assert.Equal(t, int64(800), ranking[0].TotalViews)
	assert.Equal(t, "C2", ranking[1].ChannelID)
	assert.Equal(t, "C1", ranking[2].ChannelID)
	assert.Equal(t, int64(300), ranking[2].TotalViews)
}

func TestTopChannelsByViews_Truncates(t *testing.T) {
	videos, _ := filterFixture()

	ranking := usecase.TopChannelsByViews(videos, 2)
	assert.Len(t, ranking, 2)
	assert.Equal(t, "C3", ranking[0].ChannelID)
}

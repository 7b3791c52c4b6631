package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/youtube/v3"
)

func TestConvertVideo(t *testing.T) {
	video := &youtube.Video{
		Id: "v1",
		Snippet: &youtube.VideoSnippet{
			Title:       "A video",
			PublishedAt: "2025-03-09T10:00:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Medium: &youtube.Thumbnail{Url: "https://example.com/medium.jpg"},
			},
		},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT2M45S"},
		Statistics: &youtube.VideoStatistics{
			ViewCount:    1500,
			LikeCount:    42,
			CommentCount: 7,
		},
	}

	detail, ok := convertVideo(video)
	assert.True(t, ok)
	assert.Equal(t, "v1", detail.ID)
	assert.Equal(t, "A video", detail.Title)
	assert.Equal(t, "https://example.com/medium.jpg", detail.ThumbnailURL)
	assert.Equal(t, time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC), detail.PublishedAt)
	assert.Equal(t, "PT2M45S", detail.Duration)
	assert.Equal(t, int64(1500), detail.ViewCount)
	assert.Equal(t, int64(42), detail.LikeCount)
	assert.Equal(t, int64(7), detail.CommentCount)
}

func TestConvertVideo_DropsMalformedTimestamp(t *testing.T) {
	video := &youtube.Video{
		Id: "v-bad",
		Snippet: &youtube.VideoSnippet{
			Title:       "Broken timestamp",
			PublishedAt: "not-a-timestamp",
		},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT1M"},
	}

	_, ok := convertVideo(video)
	assert.False(t, ok)
}

func TestConvertVideo_DropsMissingSnippet(t *testing.T) {
	_, ok := convertVideo(&youtube.Video{Id: "v-empty"})
	assert.False(t, ok)

	_, ok = convertVideo(&youtube.Video{
		Id:      "v-no-content",
		Snippet: &youtube.VideoSnippet{PublishedAt: "2025-03-09T10:00:00Z"},
	})
	assert.False(t, ok)
}

func TestConvertVideo_MissingStatisticsDefaultToZero(t *testing.T) {
	video := &youtube.Video{
		Id: "v-nostats",
		Snippet: &youtube.VideoSnippet{
			PublishedAt: "2025-03-09T10:00:00Z",
		},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT1M"},
	}

	detail, ok := convertVideo(video)
	assert.True(t, ok)
	assert.Zero(t, detail.ViewCount)
	assert.Zero(t, detail.LikeCount)
	assert.Zero(t, detail.CommentCount)
}

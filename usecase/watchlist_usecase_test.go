package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

// MockYouTube mocks repository.IYouTube.
type MockYouTube struct {
	mock.Mock
}

func (m *MockYouTube) ChannelByHandle(ctx context.Context, handle string) (*dto.ChannelInfo, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelInfo), args.Error(1)
}

func (m *MockYouTube) ChannelByID(ctx context.Context, id string) (*dto.ChannelInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelInfo), args.Error(1)
}

func (m *MockYouTube) SearchChannelID(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockYouTube) PlaylistItems(ctx context.Context, playlistID string, maxResults int64) ([]dto.PlaylistItem, error) {
	args := m.Called(ctx, playlistID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PlaylistItem), args.Error(1)
}

func (m *MockYouTube) VideoDetails(ctx context.Context, videoIDs []string) ([]dto.VideoDetail, error) {
	args := m.Called(ctx, videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoDetail), args.Error(1)
}

func alphaInfo() *dto.ChannelInfo {
	return &dto.ChannelInfo{
		ID:                "UC-alpha",
		Title:             "Alpha",
		Handle:            "@alpha",
		ThumbnailURL:      "https://example.com/alpha.jpg",
		UploadsPlaylistID: "UU-alpha",
	}
}

func TestResolveAndAddChannel_ByHandle(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(alphaInfo(), nil).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	channel, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")

	assert.NoError(t, err)
	assert.Equal(t, "UC-alpha", channel.ID)
	assert.Equal(t, "UU-alpha", channel.UploadsPlaylistID)
	assert.Len(t, watchlist.Channels(), 1)
	mockYouTube.AssertExpectations(t)
}

func TestResolveAndAddChannel_CreatesDefaultFolder(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(alphaInfo(), nil).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	assert.Empty(t, watchlist.Folders())

	channel, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")
	assert.NoError(t, err)

	folders := watchlist.Folders()
	assert.Len(t, folders, 1)
	assert.Equal(t, usecase.DefaultFolderName, folders[0].Name)
	assert.Equal(t, folders[0].ID, channel.FolderID)
}

func TestResolveAndAddChannel_Duplicate(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(alphaInfo(), nil).Twice()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	_, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")
	assert.NoError(t, err)

	_, err = watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")
	assert.ErrorIs(t, err, model.ErrDuplicateChannel)
	assert.Len(t, watchlist.Channels(), 1)
}

func TestResolveAndAddChannel_SearchFallback(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByID", mock.Anything, "Alpha Channel").Return(nil, model.ErrChannelNotFound).Once()
	mockYouTube.On("SearchChannelID", mock.Anything, "Alpha Channel").Return("UC-alpha", nil).Once()
	mockYouTube.On("ChannelByID", mock.Anything, "UC-alpha").Return(alphaInfo(), nil).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	channel, err := watchlist.ResolveAndAddChannel(context.Background(), "Alpha Channel", "")

	assert.NoError(t, err)
	assert.Equal(t, "UC-alpha", channel.ID)
	mockYouTube.AssertExpectations(t)
}

func TestResolveAndAddChannel_NotFound(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByID", mock.Anything, "nope").Return(nil, model.ErrChannelNotFound).Once()
	mockYouTube.On("SearchChannelID", mock.Anything, "nope").Return("", model.ErrChannelNotFound).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	_, err := watchlist.ResolveAndAddChannel(context.Background(), "nope", "")

	assert.ErrorIs(t, err, model.ErrChannelNotFound)
	assert.Empty(t, watchlist.Channels())
}

func TestResolveAndAddChannel_APIErrorIsNotRetried(t *testing.T) {
	mockYouTube := new(MockYouTube)
	apiErr := errors.Join(model.ErrAPI, errors.New("quota exceeded"))
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(nil, apiErr).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	_, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")

	assert.ErrorIs(t, err, model.ErrAPI)
	assert.Empty(t, watchlist.Channels())
	mockYouTube.AssertExpectations(t)
}

func TestResolveAndAddChannel_ExplicitFolder(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(alphaInfo(), nil).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube)
	_, err := watchlist.AddFolder(context.Background(), "News")
	assert.NoError(t, err)
	tech, err := watchlist.AddFolder(context.Background(), "Tech")
	assert.NoError(t, err)

	channel, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", tech.ID)
	assert.NoError(t, err)
	assert.Equal(t, tech.ID, channel.FolderID)
}

func TestResolveAndAddChannel_ClearsSnapshotCache(t *testing.T) {
	mockYouTube := new(MockYouTube)
	mockYouTube.On("ChannelByHandle", mock.Anything, "@alpha").Return(alphaInfo(), nil).Once()

	mockCache := new(MockSnapshotCache)
	mockCache.On("Clear", mock.Anything).Return(nil).Once()

	watchlist := usecase.NewWatchlistUseCase(mockYouTube).WithSnapshotCache(mockCache)
	_, err := watchlist.ResolveAndAddChannel(context.Background(), "@alpha", "")

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestEnsureDefaultFolder(t *testing.T) {
	watchlist := usecase.NewWatchlistUseCase(nil)

	folder := watchlist.EnsureDefaultFolder(context.Background())
	assert.Equal(t, usecase.DefaultFolderName, folder.Name)
	assert.Len(t, watchlist.Folders(), 1)

	// Idempotent: a second call returns the existing first folder.
	again := watchlist.EnsureDefaultFolder(context.Background())
	assert.Equal(t, folder.ID, again.ID)
	assert.Len(t, watchlist.Folders(), 1)
}

func TestAddFolder_RequiresName(t *testing.T) {
	watchlist := usecase.NewWatchlistUseCase(nil)
	_, err := watchlist.AddFolder(context.Background(), "   ")
	assert.Error(t, err)
	assert.Empty(t, watchlist.Folders())
}

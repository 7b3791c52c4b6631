package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

// IWatchlistHandler defines the folder and channel HTTP handlers.
type IWatchlistHandler interface {
	GetFolders(ctx *gin.Context)
	AddFolder(ctx *gin.Context)
	GetChannels(ctx *gin.Context)
	AddChannel(ctx *gin.Context)
}

// WatchlistHandler implements the watchlist HTTP handlers.
type WatchlistHandler struct {
	watchlistUseCase usecase.IWatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase usecase.IWatchlistUseCase) IWatchlistHandler {
	return &WatchlistHandler{watchlistUseCase: watchlistUseCase}
}

// GetFolders handles GET /api/folders
func (h *WatchlistHandler) GetFolders(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.watchlistUseCase.Folders()})
}

// AddFolder handles POST /api/folders
func (h *WatchlistHandler) AddFolder(ctx *gin.Context) {
	var req dto.AddFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Folder name is required"})
		return
	}

	folder, err := h.watchlistUseCase.AddFolder(ctx.Request.Context(), req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add folder", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": folder})
}

// GetChannels handles GET /api/channels
func (h *WatchlistHandler) GetChannels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.watchlistUseCase.Channels()})
}

// AddChannel handles POST /api/channels
func (h *WatchlistHandler) AddChannel(ctx *gin.Context) {
	var req dto.AddChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Channel identifier is required"})
		return
	}

	channel, err := h.watchlistUseCase.ResolveAndAddChannel(ctx.Request.Context(), req.Identifier, req.FolderID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrChannelNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Channel not found", "message": err.Error()})
		case errors.Is(err, model.ErrDuplicateChannel):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Channel already tracked", "message": err.Error()})
		case errors.Is(err, model.ErrAPI):
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "YouTube API error", "message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add channel", "message": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": channel})
}

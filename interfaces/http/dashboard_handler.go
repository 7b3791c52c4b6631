package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/dto"
	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

// IDashboardHandler defines the dashboard HTTP handlers.
type IDashboardHandler interface {
	GetDashboard(ctx *gin.Context)
	Refresh(ctx *gin.Context)
}

// DashboardHandler implements the dashboard HTTP handlers.
type DashboardHandler struct {
	dashboardUseCase usecase.IDashboardUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.IDashboardUseCase) IDashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(ctx *gin.Context) {
	req := &dto.DashboardRequest{
		FolderID:  ctx.Query("folder_id"),
		ChannelID: ctx.Query("channel_id"),
		Format:    ctx.Query("format"),
	}

	response := h.dashboardUseCase.GetDashboard(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// Refresh handles POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(ctx *gin.Context) {
	h.dashboardUseCase.Refresh(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

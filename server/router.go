package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "github.com/Idkwii/Cycle-youtube-analytics/interfaces/http"
	"github.com/Idkwii/Cycle-youtube-analytics/interfaces/middleware"
)

func InitiateRouter(
	watchlistHandler httpHandler.IWatchlistHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	corsOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	{
		api.GET("/folders", watchlistHandler.GetFolders)
		api.POST("/folders", watchlistHandler.AddFolder)
		api.GET("/channels", watchlistHandler.GetChannels)
		api.POST("/channels", watchlistHandler.AddChannel)

		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.POST("/dashboard/refresh", dashboardHandler.Refresh)
	}

	return router
}

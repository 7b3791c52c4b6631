package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.GetLogger().
			WithField("method", ctx.Request.Method).
			WithField("path", ctx.Request.URL.Path).
			WithField("status", ctx.Writer.Status()).
			WithField("latency_ms", time.Since(start).Milliseconds()).
			Info("Request handled")
	}
}

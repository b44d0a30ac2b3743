package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"inkpost/internal/logger"
	"inkpost/services"
)

// VisitorLogging records one visitor row per request. Best-effort: the write
// happens off the request goroutine and a failure only produces a log line.
func VisitorLogging(svc *services.VisitorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()
		path := c.Request.URL.Path

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := svc.Log(ctx, ip, userAgent, path); err != nil {
				logger.Log.Errorf("visitor log failed: %v", err)
			}
		}()

		c.Next()
	}
}

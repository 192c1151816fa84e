package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/telemetry"
)

// Logging emits one structured log line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"requestId":  RequestIDFromContext(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": float64(latency.Microseconds()) / 1000.0,
			"clientIp":   c.ClientIP(),
			"userAgent":  c.Request.UserAgent(),
		}
		if userID := UserIDFromContext(c); userID != "" {
			fields["userId"] = userID
		}
		telemetry.Info("request.complete", fields)
	}
}

package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	videotoken "github.com/chimerakang/videotoken-go"
)

// RequestID returns middleware that tags every request with an ID, honoring
// an incoming X-Request-ID header and generating a UUID otherwise. The ID is
// stored in the request context and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(videotoken.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logging returns middleware that writes one structured log line per request.
// Only request metadata is logged; bodies carry tokens and are never logged.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", videotoken.RequestIDFromContext(c.Request.Context()),
		)
	}
}

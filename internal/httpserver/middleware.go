package httpserver

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inboxpulse/pkg/metrics"
)

// MetricsMiddleware records per-request latency labeled by route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

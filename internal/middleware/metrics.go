package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/erp_ledger/internal/platform/obs"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count, latency and in-flight requests,
// labelled by the matched route template.
func MetricsMiddleware(m *obs.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.RequestStarted()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestFinished(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

package middleware

import (
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath is the route template (/volunteers/:id), keeping label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), start)
	}
}

package middleware

import (
	"strconv"
	"time"

	"contest_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware считает запросы и латентность по шаблону маршрута
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.ObserveRequest(c.Request.Method, route, status, time.Since(start))
	}
}

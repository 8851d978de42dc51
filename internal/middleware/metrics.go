package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"demo_services/internal/metrics"
)

// Metrics 記錄請求次數與耗時到 Prometheus
// 需註冊在 Recovery 之前，否則 panic 會略過記錄
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(service, path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(service, path, method).Observe(time.Since(start).Seconds())
	}
}

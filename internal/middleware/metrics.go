package middleware

import (
	"strconv"
	"time"

	"github.com/campreg/campreg/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request duration per route. FullPath keeps the label set
// bounded; unmatched routes collapse into one bucket.
func Metrics(m *metrics.Metrics) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

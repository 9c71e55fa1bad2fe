package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoquadros/barber-agenda/internal/metrics"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.IncHTTP(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		)
	}
}

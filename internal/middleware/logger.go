package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
// 5xx 和慢请求带单独标记，方便在日志里直接 grep
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			log.Printf("[HTTP][ERR] %s %s %s %d %dB %v",
				c.Request.Method, path, c.ClientIP(), status, c.Writer.Size(), latency)
		case latency > time.Second:
			log.Printf("[HTTP][SLOW] %s %s %s %d %dB %v",
				c.Request.Method, path, c.ClientIP(), status, c.Writer.Size(), latency)
		default:
			log.Printf("[HTTP] %s %s %s %d %dB %v",
				c.Request.Method, path, c.ClientIP(), status, c.Writer.Size(), latency)
		}
	}
}

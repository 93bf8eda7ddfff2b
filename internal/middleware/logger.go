package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prodboard/internal/pkg/logx"
)

// RequestLogger logs every request through the injected logger and
// recovers from panics with a JSON 500.
func RequestLogger(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", recovered),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal Server Error",
					},
				})
			}
		}()

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.Int64("user_id", c.GetInt64("user_id")),
			zap.Duration("latency", time.Since(start)),
		}
		if rid := c.GetHeader("X-Request-ID"); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}
		for _, err := range c.Errors {
			fields = append(fields, zap.String("error", err.Error()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request failed", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

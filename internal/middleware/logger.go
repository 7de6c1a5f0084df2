package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/logger"
)

// RequestLogger stores a request-scoped child logger and writes one line
// per request. Bodies and headers are never logged.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		l := base.With(zap.String("request_id", logger.RequestID(c)))
		c.Set(logger.ContextLogger, l)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := c.GetString(ContextUserID); id != "" {
			fields = append(fields, zap.String("user_id", id))
		}
		if action := logger.Action(c); action != "" {
			fields = append(fields, zap.String("action", action))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			l.Error("request completed", fields...)
		case status >= 400:
			l.Warn("request completed", fields...)
		default:
			l.Info("request completed", fields...)
		}
	}
}

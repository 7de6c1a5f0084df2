package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/logger"
	"github.com/BruksfildServices01/bizmarket/internal/metrics"
)

// RateLimit allows limit requests per client IP per minute for the named
// bucket. When Redis is unavailable requests pass through.
func RateLimit(rdb *redis.Client, bucket string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", bucket, c.ClientIP())
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.FromContext(c).Warn("rate limit check skipped", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, time.Minute)
		}

		if count > int64(limit) {
			metrics.RateLimited.Inc()
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}

		c.Next()
	}
}

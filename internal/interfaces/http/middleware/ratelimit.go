package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/infrastructure/ratelimit"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// RateLimit throttles a route per client IP with the given config. When
// the limiter backend is down the request passes; throttling is protection,
// not a dependency.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, name string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable", "name", name, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

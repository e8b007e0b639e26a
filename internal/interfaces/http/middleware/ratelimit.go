package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"veil/internal/infrastructure/ratelimit"
	"veil/internal/shared/logger"
	"veil/internal/shared/utils"
)

// LoginRateLimit throttles credential attempts per client IP. When the
// limiter backend is unavailable requests pass through rather than locking
// every admin out.
func LoginRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("login:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

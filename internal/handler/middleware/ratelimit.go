package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/infra/ratelimit"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit throttles per client IP and route. Limiter failures let the
// request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		if res.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		}

		if !res.Allowed {
			secs := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", gin.H{"retry_after": secs})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/ratelimiter"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

// ActionLimiter grants one action per client per window.
type ActionLimiter interface {
	Enabled() bool
	Allow(ctx context.Context, subject, action string) error
	Clear(ctx context.Context, subject, action string) error
}

// RateLimit lets each client perform action once per limiter window. A
// failed attempt gives the window back so the client can retry at once.
func RateLimit(limiter ActionLimiter, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}

		scope, err := response.GetClientID(c)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		if err := limiter.Allow(c.Request.Context(), scope, action); err != nil {
			var rateLimitErr *ratelimiter.RateLimitError
			if errors.As(err, &rateLimitErr) {
				c.Header("Retry-After", fmt.Sprintf("%.0f", rateLimitErr.RetryAfter.Seconds()))
			}
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := limiter.Clear(c.Request.Context(), scope, action); err != nil {
				logger.Log.Warnw("failed to release rate limit", "action", action, "error", err)
			}
		}
	}
}

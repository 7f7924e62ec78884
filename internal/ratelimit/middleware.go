package ratelimit

import (
	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/metrics"
	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests with 429 once the client IP exhausts its bucket.
// name labels the rejection metric.
func Middleware(limiter *Limiter, name string, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := observability.GetRealClientIP(c)
		if !limiter.Allow(ip) {
			metrics.RecordRateLimited(name)
			logger.Warn(c.Request.Context(), "rate limit exceeded")
			apierrors.TooManyRequests(c, "Too many requests. Please slow down.")
			return
		}
		c.Next()
	}
}

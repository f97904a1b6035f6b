package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-product-api/internal/transport/http/response"
)

// RateLimit is a process-wide token bucket guarding the store downstream.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			response.ErrorBody(http.StatusTooManyRequests, "TooManyRequests", "too many requests"))
	}
}

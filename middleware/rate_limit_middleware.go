package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests beyond the limiter's budget with 429
// and a GraphQL-shaped error body.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"errors": []gin.H{{
					"message":    "The API is at capacity, try again later.",
					"extensions": gin.H{"code": "RATE_LIMITED"},
				}},
			})
			return
		}
		c.Next()
	}
}

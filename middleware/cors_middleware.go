package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser GraphQL clients from the configured
// origins (comma separated, wildcards allowed).
func CORSMiddleware(AppOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(AppOrigins, ",")
	corsConfig.AllowWildcard = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"Accept-Encoding",
		"Apollo-Require-Preflight",
		RequestIDHeader,
		"X-Requested-With",
	}...)
	corsConfig.ExposeHeaders = []string{RequestIDHeader}

	return cors.New(corsConfig)
}

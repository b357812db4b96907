package routes

import (
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"taskboard-api/taskboard/config"
	"taskboard-api/taskboard/database"
	"taskboard-api/taskboard/middleware"
)

type RouterOptions struct {
	Config   config.Config
	Log      *logrus.Logger
	DB       *database.Database
	Schema   *graphql.Schema
	Registry *prometheus.Registry
}

// NewRouter builds the gin engine with the full middleware chain and all
// routes registered.
func NewRouter(opts RouterOptions) *gin.Engine {
	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := middleware.NewMetrics(opts.Registry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(opts.Log))
	router.Use(middleware.MetricsMiddleware(metrics))
	router.Use(middleware.CORSMiddleware(opts.Config.AllowedOrigins))

	RegisterHealthRoutes(router, opts.DB)
	RegisterMetricsRoutes(router, opts.Registry)

	limiter := rate.NewLimiter(rate.Limit(opts.Config.RateLimitRPS), opts.Config.RateLimitBurst)
	api := router.Group("/", middleware.RateLimitMiddleware(limiter))
	RegisterGraphQLRoutes(api, opts.Schema, metrics)

	return router
}

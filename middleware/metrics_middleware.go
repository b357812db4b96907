package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and GraphQL collectors.
type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	operations    *prometheus.CounterVec
	graphqlErrors *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_graphql_operations_total",
			Help: "Total number of executed GraphQL operations by operation name.",
		}, []string{"operation"}),
		graphqlErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_graphql_errors_total",
			Help: "Total number of GraphQL errors by error code.",
		}, []string{"code"}),
	}
	reg.MustRegister(m.requests, m.duration, m.operations, m.graphqlErrors)
	return m
}

func MetricsMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveGraphQL records one executed operation and its errors. Errors
// without an extensions code (parse and validation failures) are counted
// as GRAPHQL_VALIDATION.
func (m *Metrics) ObserveGraphQL(operationName string, errs []*errors.QueryError) {
	if m == nil {
		return
	}
	if operationName == "" {
		operationName = "anonymous"
	}
	m.operations.WithLabelValues(operationName).Inc()

	for _, err := range errs {
		code := "GRAPHQL_VALIDATION"
		if c, ok := err.Extensions["code"].(string); ok && c != "" {
			code = c
		}
		m.graphqlErrors.WithLabelValues(code).Inc()
	}
}

package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records request counts and latencies.
type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, dur time.Duration)
}

// MetricsMiddleware records one observation per request, labelled by the
// matched route template so path parameters do not explode cardinality.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request after the handler and error handler have run
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let echo write the error response so the status is final.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveHTTP(route, c.Request().Method, c.Response().Status, time.Since(start))

		return nil
	}
}

package middleware

import (
	"net/http"
	"time"

	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Collector
}

// NewMetricsMiddleware creates a metrics middleware; a nil collector records nothing.
func NewMetricsMiddleware(m *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.ObserveRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

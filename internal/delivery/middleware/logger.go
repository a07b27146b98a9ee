package middleware

import (
	"log/slog"

	"prepmap/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request through slog-echo.
// Debug mode adds request headers and query details.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	cfg := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health", "/metrics"),
		},
	}
	if config.Env.Debug {
		cfg.DefaultLevel = slog.LevelDebug
		cfg.WithRequestHeader = true
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger.WithGroup("http"), cfg),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}

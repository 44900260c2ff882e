package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every HTTP request with latency and status
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			handle := "anonymous"
			if v := c.Get("user_handle"); v != nil {
				handle = fmt.Sprintf("%v", v)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []Field{
				String("method", method),
				String("path", path),
				Int("status", statusCode),
				String("client_ip", clientIP),
				Duration("latency", latency),
				String("user_handle", handle),
				String("request_id", requestID),
			}

			switch {
			case statusCode >= 500:
				logger.Error("HTTP request", fields...)
			case statusCode >= 400:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}

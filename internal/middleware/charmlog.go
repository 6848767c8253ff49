package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs every request through the charm logger. Successful requests
// log at debug so the preview page's polling stays out of the info log.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"latency", time.Since(start).Round(time.Microsecond),
			}

			switch {
			case err != nil || status >= 500:
				log.Error("request failed", append(fields, "err", err)...)
			case status >= 400:
				log.Warn("request rejected", fields...)
			default:
				log.Debug("request", fields...)
			}
			return nil
		}
	}
}

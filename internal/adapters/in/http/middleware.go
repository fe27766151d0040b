package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one structured line per request with the method, path,
// status, duration and the request id set by middleware.RequestID.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Commit the error response now so the logged status is final.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			logger.InfoContext(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)

			return err
		}
	}
}

package middleware

import (
	"log/slog"
	"time"

	"sweet-shop/internal/api"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one structured access log line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}
			logRequest(logger, c, start, err)
			return nil
		}
	}
}

func logRequest(logger *slog.Logger, c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if u := CurrentUser(c); u != nil {
		fields = append(fields, slog.String("user_id", u.ID))
	}
	if err == nil {
		err, _ = c.Get(api.ContextErrorKey).(error)
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	if res.Status >= 400 {
		level = slog.LevelWarn
	}
	if res.Status >= 500 {
		level = slog.LevelError
	}
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

package api

import (
	"fmt"
	"log/slog"

	"sweet-shop/internal/apperror"

	"github.com/labstack/echo/v4"
)

// ContextErrorKey holds the error a handler rendered itself so the access
// log can report it.
const ContextErrorKey = "handler_error"

// WriteError renders err as an ErrorResponse with the status of its kind.
// Internal errors are logged with their cause. The stack is included only
// while echo runs in debug mode.
func WriteError(c echo.Context, err error) error {
	appErr := apperror.From(err)
	c.Set(ContextErrorKey, err)
	if appErr.Kind == apperror.KindInternal {
		req := c.Request()
		slog.ErrorContext(req.Context(), "request failed",
			"error", err.Error(),
			"method", req.Method,
			"path", req.URL.Path,
		)
	}
	body := ErrorResponse{Message: appErr.Message}
	if c.Echo().Debug {
		body.Stack = fmt.Sprintf("%+v", appErr)
	}
	return c.JSON(appErr.Kind.Status(), body)
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"sweet-shop/internal/api"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const MsgRouteNotFound = "Route not found"

// HTTPErrorHandler renders errors that escape handlers, including routing
// failures and recovered panics, as api.ErrorResponse.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg := fmt.Sprint(httpErr.Message)
			if httpErr.Code == http.StatusNotFound {
				msg = MsgRouteNotFound
			}
			if httpErr.Code >= http.StatusInternalServerError {
				logger.Error("request failed", "error", err, "path", c.Request().URL.Path)
			}
			writeJSON(c, httpErr.Code, api.ErrorResponse{Message: msg})
			return
		}

		// api.WriteError logs internal errors itself.
		if werr := api.WriteError(c, err); werr != nil {
			logger.Error("write error response", "error", werr)
		}
	}
}

func writeJSON(c echo.Context, status int, body any) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

package auth

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳目前登入的使用者（不含密碼）
// @Summary     取得個人資料
// @Tags        auth
// @Produce     json
// @Success     200 {object} model.User
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/auth/me [get]
func MeHandler(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return api.WriteError(c, apperror.Unauthenticated(MsgNotAuthorized))
	}
	return c.JSON(http.StatusOK, user)
}

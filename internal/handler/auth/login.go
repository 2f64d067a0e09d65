package auth

import (
	"net/http"
	"strings"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"
	"sweet-shop/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證；超級管理員需改用 admin-login
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /api/auth/login [post]
func LoginHandler(db database.DB, tokens TokenSigner, superAdminEmail string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingCredentials))
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingCredentials))
		}
		if strings.EqualFold(req.Email, superAdminEmail) {
			return api.WriteError(c, apperror.Forbidden(MsgUseAdminLogin))
		}

		// 撈使用者資料；不存在與密碼錯誤回傳相同訊息
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return api.WriteError(c, apperror.Unauthenticated(MsgInvalidCredentials))
		}
		if err != nil {
			return api.WriteError(c, err)
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindUnauthenticated, MsgInvalidCredentials))
		}

		token, err := tokens.Sign(user.ID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewAuthResponse(user, token))
	}
}

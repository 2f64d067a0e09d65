package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/config"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// AdminLoginHandler 驗證超級管理員並校正帳號狀態
// @Summary     管理員登入
// @Description 比對設定檔中的超級管理員帳密，成功後確保其為唯一管理員
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "管理員帳密"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /api/auth/admin-login [post]
func AdminLoginHandler(db database.DB, tokens TokenSigner, admin config.SuperAdmin) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingCredentials))
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingCredentials))
		}

		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(strings.ToLower(admin.Email))) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(admin.Password)) == 1
		if !emailOK || !passwordOK {
			return api.WriteError(c, apperror.Unauthenticated(MsgInvalidAdminLogin))
		}

		user, err := ensureSuperAdmin(c.Request().Context(), db, admin)
		if err != nil {
			return api.WriteError(c, err)
		}
		token, err := tokens.Sign(user.ID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewAuthResponse(user, token))
	}
}

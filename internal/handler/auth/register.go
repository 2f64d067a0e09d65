package auth

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"
	"sweet-shop/internal/model"
	"sweet-shop/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterHandler 註冊一般使用者並回傳 JWT
// @Summary     註冊使用者
// @Description 建立新帳號；超級管理員信箱保留給系統使用
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /api/auth/register [post]
func RegisterHandler(db database.DB, tokens TokenSigner, superAdminEmail string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingFields))
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgMissingFields))
		}
		if utf8.RuneCountInString(req.Password) < minPasswordLength {
			return api.WriteError(c, apperror.Validation(MsgShortPassword))
		}
		if strings.EqualFold(req.Email, superAdminEmail) {
			return api.WriteError(c, apperror.Forbidden(MsgReservedEmail))
		}

		ctx := c.Request().Context()
		exists, err := userExists(ctx, db, req.Username, req.Email)
		if err != nil {
			return api.WriteError(c, err)
		}
		if exists {
			return api.WriteError(c, apperror.Conflict(MsgUserExists))
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return api.WriteError(c, err)
		}
		user, err := createUser(ctx, db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      bool(req.IsAdmin),
		})
		// 並發註冊由唯一索引擋下
		if errors.Is(err, store.ErrDuplicate) {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindConflict, MsgUserExists))
		}
		if err != nil {
			return api.WriteError(c, err)
		}

		token, err := tokens.Sign(user.ID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewAuthResponse(user, token))
	}
}

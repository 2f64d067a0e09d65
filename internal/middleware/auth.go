package middleware

import (
	"log/slog"
	"strings"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"
	"sweet-shop/internal/model"
	"sweet-shop/internal/service"
	"sweet-shop/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const ContextUserKey = "user"

const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
	MsgNoUser      = "User not found"
	MsgNotAdmin    = "Not authorized as admin"
)

var (
	getUserByID  = store.GetUserByID
	setUserAdmin = store.SetUserAdmin
)

// TokenVerifier is satisfied by *service.TokenService.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate resolves the bearer token to a user and stores it under
// ContextUserKey. An admin-flagged account whose email is not the super
// admin's is demoted and persisted before the request continues.
func Authenticate(db database.DB, tokens TokenVerifier, superAdminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return api.WriteError(c, apperror.Unauthenticated(MsgNoToken))
			}
			claims, err := tokens.Verify(token)
			if err != nil {
				return api.WriteError(c, apperror.Wrap(err, apperror.KindUnauthenticated, MsgTokenFailed))
			}

			ctx := c.Request().Context()
			user, err := getUserByID(ctx, db, claims.ID)
			if errors.Is(err, store.ErrNotFound) {
				return api.WriteError(c, apperror.Wrap(err, apperror.KindUnauthenticated, MsgNoUser))
			}
			if err != nil {
				return api.WriteError(c, apperror.Wrap(err, apperror.KindUnauthenticated, MsgTokenFailed))
			}

			if user.IsAdmin && !strings.EqualFold(user.Email, superAdminEmail) {
				if err := setUserAdmin(ctx, db, user.ID, false); err != nil {
					return api.WriteError(c, apperror.Wrap(err, apperror.KindUnauthenticated, MsgTokenFailed))
				}
				user.IsAdmin = false
				slog.WarnContext(ctx, "demoted admin account", "user_id", user.ID, "email", user.Email)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Authenticate, or nil.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil || !u.IsAdmin {
			return api.WriteError(c, apperror.Forbidden(MsgNotAdmin))
		}
		return next(c)
	}
}

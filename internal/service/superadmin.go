package service

import (
	"context"
	"log/slog"

	"sweet-shop/internal/config"
	"sweet-shop/internal/database"
	"sweet-shop/internal/model"
	"sweet-shop/internal/store"

	"github.com/pkg/errors"
)

var (
	demoteAdminsExcept = store.DemoteAdminsExcept
	getUserByEmail     = store.GetUserByEmail
	createUser         = store.CreateUser
	updateUser         = store.UpdateUser
)

// EnsureSuperAdmin makes the configured account the only admin.
//
// Every other admin-flagged account is demoted, the super admin is created
// when missing, and its admin flag and password are corrected when they
// drifted. Calling it again on a converged store writes nothing beyond the
// demotion query.
func EnsureSuperAdmin(ctx context.Context, db database.DB, admin config.SuperAdmin) (*model.User, error) {
	demoted, err := demoteAdminsExcept(ctx, db, admin.Email)
	if err != nil {
		return nil, errors.WithMessage(err, "EnsureSuperAdmin")
	}
	if demoted > 0 {
		slog.WarnContext(ctx, "demoted stray admin accounts", "count", demoted)
	}

	u, err := getUserByEmail(ctx, db, admin.Email)
	if errors.Is(err, store.ErrNotFound) {
		hash, err := HashPassword(admin.Password)
		if err != nil {
			return nil, errors.Wrap(err, "EnsureSuperAdmin")
		}
		u, err = createUser(ctx, db, &model.User{
			Username:     admin.Username,
			Email:        admin.Email,
			PasswordHash: hash,
			IsAdmin:      true,
		})
		if err != nil {
			return nil, errors.WithMessage(err, "EnsureSuperAdmin")
		}
		slog.InfoContext(ctx, "created super admin", "user_id", u.ID)
		return u, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "EnsureSuperAdmin")
	}

	changed := false
	if !u.IsAdmin {
		u.IsAdmin = true
		changed = true
	}
	if ComparePassword(u.PasswordHash, admin.Password) != nil {
		hash, err := HashPassword(admin.Password)
		if err != nil {
			return nil, errors.Wrap(err, "EnsureSuperAdmin")
		}
		u.PasswordHash = hash
		changed = true
	}
	if changed {
		if err := updateUser(ctx, db, u); err != nil {
			return nil, errors.WithMessage(err, "EnsureSuperAdmin")
		}
		slog.InfoContext(ctx, "corrected super admin account", "user_id", u.ID)
	}
	return u, nil
}

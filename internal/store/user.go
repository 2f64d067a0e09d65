package store

import (
	"context"

	"sweet-shop/internal/database"
	"sweet-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const userColumns = `id, username, email, password_hash, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, id string) (*model.User, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrNotFound, "GetUserByID")
	}
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(err, "GetUserByID")
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, wrap(err, "GetUserByEmail")
	}
	return u, nil
}

// UserExists reports whether an account already uses the username or email.
func UserExists(ctx context.Context, db database.DB, username, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email, username,
	).Scan(&exists)
	if err != nil {
		return false, wrap(err, "UserExists")
	}
	return exists, nil
}

// CreateUser inserts u, assigning its id and timestamps.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrap(err, "CreateUser")
	}
	return u, nil
}

// UpdateUser writes every mutable column of u.
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET username = $1, email = $2, password_hash = $3, is_admin = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING updated_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
		u.ID,
	)
	if err := row.Scan(&u.UpdatedAt); err != nil {
		return wrap(err, "UpdateUser")
	}
	return nil
}

func SetUserAdmin(ctx context.Context, db database.DB, id string, isAdmin bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET is_admin = $1, updated_at = now() WHERE id = $2`,
		isAdmin, id,
	)
	if err != nil {
		return wrap(err, "SetUserAdmin")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(ErrNotFound, "SetUserAdmin")
	}
	return nil
}

// DemoteAdminsExcept clears the admin flag on every account whose email
// differs from email and returns how many were changed.
func DemoteAdminsExcept(ctx context.Context, db database.DB, email string) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users SET is_admin = FALSE, updated_at = now()
		 WHERE is_admin AND email <> $1`,
		email,
	)
	if err != nil {
		return 0, wrap(err, "DemoteAdminsExcept")
	}
	return tag.RowsAffected(), nil
}

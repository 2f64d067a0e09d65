// Package store holds the SQL persistence for users and sweets.
package store

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockLimit        = errors.New("stock limit exceeded")
)

const uniqueViolation = "23505"

var newID = uuid.NewString

// wrap maps driver errors onto the package sentinels and records a stack.
func wrap(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Wrapf(ErrDuplicate, "%s: %s", op, pgErr.ConstraintName)
	}
	return errors.Wrap(err, op)
}

// validID reports whether id can address a row. Malformed ids never match.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

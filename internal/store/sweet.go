package store

import (
	"context"
	"fmt"
	"strings"

	"sweet-shop/internal/database"
	"sweet-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const sweetColumns = `id, name, category, price, quantity, description, image_url, created_at, updated_at`

func scanSweet(row pgx.Row) (*model.Sweet, error) {
	s := &model.Sweet{}
	if err := row.Scan(
		&s.ID,
		&s.Name,
		(*string)(&s.Category),
		&s.Price,
		&s.Quantity,
		&s.Description,
		&s.ImageURL,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}

func collectSweets(rows pgx.Rows, op string) ([]model.Sweet, error) {
	defer rows.Close()
	sweets := []model.Sweet{}
	for rows.Next() {
		s, err := scanSweet(rows)
		if err != nil {
			return nil, wrap(err, op)
		}
		sweets = append(sweets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err, op)
	}
	return sweets, nil
}

// CreateSweet inserts s, assigning its id and timestamps.
func CreateSweet(ctx context.Context, db database.DB, s *model.Sweet) (*model.Sweet, error) {
	s.ID = newID()
	if s.ImageURL == "" {
		s.ImageURL = model.DefaultImageURL
	}
	row := db.QueryRow(ctx,
		`INSERT INTO sweets (id, name, category, price, quantity, description, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		s.ID,
		s.Name,
		string(s.Category),
		s.Price,
		s.Quantity,
		s.Description,
		s.ImageURL,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, wrap(err, "CreateSweet")
	}
	return s, nil
}

// ListSweets returns every sweet in creation order.
func ListSweets(ctx context.Context, db database.DB) ([]model.Sweet, error) {
	rows, err := db.Query(ctx, `SELECT `+sweetColumns+` FROM sweets ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap(err, "ListSweets")
	}
	return collectSweets(rows, "ListSweets")
}

func GetSweetByID(ctx context.Context, db database.DB, id string) (*model.Sweet, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrNotFound, "GetSweetByID")
	}
	s, err := scanSweet(db.QueryRow(ctx, `SELECT `+sweetColumns+` FROM sweets WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(err, "GetSweetByID")
	}
	return s, nil
}

// SweetFilter narrows a search. Zero fields are ignored; the rest AND together.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (f SweetFilter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Name != "" {
		add(`name ILIKE $%d`, "%"+likeEscaper.Replace(f.Name)+"%")
	}
	if f.Category != "" {
		add(`category = $%d`, f.Category)
	}
	if f.MinPrice != nil {
		add(`price >= $%d`, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(`price <= $%d`, *f.MaxPrice)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func SearchSweets(ctx context.Context, db database.DB, f SweetFilter) ([]model.Sweet, error) {
	where, args := f.where()
	rows, err := db.Query(ctx,
		`SELECT `+sweetColumns+` FROM sweets`+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, wrap(err, "SearchSweets")
	}
	return collectSweets(rows, "SearchSweets")
}

// SweetPatch lists the columns to overwrite. Nil fields are left untouched.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
}

func (p SweetPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Description == nil && p.ImageURL == nil
}

func (p SweetPatch) set() (string, []any) {
	var (
		cols []string
		args []any
	)
	add := func(col string, arg any) {
		args = append(args, arg)
		cols = append(cols, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	cols = append(cols, "updated_at = now()")
	return strings.Join(cols, ", "), args
}

// UpdateSweet applies p in a single statement and returns the new record.
func UpdateSweet(ctx context.Context, db database.DB, id string, p SweetPatch) (*model.Sweet, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrNotFound, "UpdateSweet")
	}
	if p.IsEmpty() {
		return GetSweetByID(ctx, db, id)
	}
	set, args := p.set()
	args = append(args, id)
	s, err := scanSweet(db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE sweets SET %s WHERE id = $%d RETURNING %s`, set, len(args), sweetColumns),
		args...,
	))
	if err != nil {
		return nil, wrap(err, "UpdateSweet")
	}
	return s, nil
}

func DeleteSweet(ctx context.Context, db database.DB, id string) error {
	if !validID(id) {
		return errors.Wrap(ErrNotFound, "DeleteSweet")
	}
	tag, err := db.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return wrap(err, "DeleteSweet")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(ErrNotFound, "DeleteSweet")
	}
	return nil
}

// DeleteSweetsByName removes every sweet whose name is in names.
func DeleteSweetsByName(ctx context.Context, db database.DB, names []string) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM sweets WHERE name = ANY($1)`, names)
	if err != nil {
		return 0, wrap(err, "DeleteSweetsByName")
	}
	return tag.RowsAffected(), nil
}

// PurchaseSweet takes qty units out of stock in one conditional update, so
// concurrent purchases can never drive the quantity below zero.
func PurchaseSweet(ctx context.Context, db database.DB, id string, qty int) (*model.Sweet, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrNotFound, "PurchaseSweet")
	}
	s, err := scanSweet(db.QueryRow(ctx,
		`UPDATE sweets SET quantity = quantity - $1, updated_at = now()
		 WHERE id = $2 AND quantity >= $1
		 RETURNING `+sweetColumns,
		qty, id,
	))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrap(err, "PurchaseSweet")
	}
	// No row matched: either the sweet is gone or the stock is short.
	if _, err := GetSweetByID(ctx, db, id); err != nil {
		return nil, errors.WithMessage(err, "PurchaseSweet")
	}
	return nil, errors.Wrap(ErrInsufficientStock, "PurchaseSweet")
}

// RestockSweet adds qty units unless the result would pass model.MaxQuantity.
func RestockSweet(ctx context.Context, db database.DB, id string, qty int) (*model.Sweet, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrNotFound, "RestockSweet")
	}
	s, err := scanSweet(db.QueryRow(ctx,
		`UPDATE sweets SET quantity = quantity + $1::bigint, updated_at = now()
		 WHERE id = $2 AND quantity <= $3::bigint - $1::bigint
		 RETURNING `+sweetColumns,
		qty, id, model.MaxQuantity,
	))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrap(err, "RestockSweet")
	}
	if _, err := GetSweetByID(ctx, db, id); err != nil {
		return nil, errors.WithMessage(err, "RestockSweet")
	}
	return nil, errors.Wrap(ErrStockLimit, "RestockSweet")
}

package store

import (
	"context"
	"time"

	"sweet-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

var fixedTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeRow 實作 pgx.Row，依 dest 數量決定填入的欄位。
type fakeRow struct {
	err    error
	user   *model.User
	sweet  *model.Sweet
	exists bool
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch len(dest) {
	case 9:
		s := r.sweet
		*dest[0].(*string) = s.ID
		*dest[1].(*string) = s.Name
		*dest[2].(*string) = string(s.Category)
		*dest[3].(*float64) = s.Price
		*dest[4].(*int) = s.Quantity
		*dest[5].(*string) = s.Description
		*dest[6].(*string) = s.ImageURL
		*dest[7].(*time.Time) = s.CreatedAt
		*dest[8].(*time.Time) = s.UpdatedAt
	case 7:
		u := r.user
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(*time.Time) = u.CreatedAt
		*dest[6].(*time.Time) = u.UpdatedAt
	case 2:
		*dest[0].(*time.Time) = fixedTime
		*dest[1].(*time.Time) = fixedTime
	case 1:
		switch d := dest[0].(type) {
		case *bool:
			*d = r.exists
		case *time.Time:
			*d = fixedTime
		}
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描。
type fakeRows struct {
	data    []model.Sweet
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := &fakeRow{sweet: &r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

type queryCall struct {
	sql  string
	args []any
}

// recordQueryRow returns a QueryRowFn that records calls and yields rows in order.
func recordQueryRow(calls *[]queryCall, rows ...*fakeRow) func(context.Context, string, ...any) pgx.Row {
	return func(_ context.Context, sql string, args ...any) pgx.Row {
		*calls = append(*calls, queryCall{sql: sql, args: args})
		r := rows[0]
		if len(rows) > 1 {
			rows = rows[1:]
		}
		return r
	}
}

const (
	sweetID = "3f1c2a9e-8d4b-4b7e-9a51-0c2d3e4f5a6b"
	userID  = "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func sampleSweet() *model.Sweet {
	return &model.Sweet{
		ID:          sweetID,
		Name:        "Dark Chocolate",
		Category:    model.CategoryChocolate,
		Price:       3.5,
		Quantity:    10,
		Description: "bitter",
		ImageURL:    model.DefaultImageURL,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
}

func sampleUser() *model.User {
	return &model.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

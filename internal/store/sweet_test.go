package store

import (
	"context"
	"errors"
	"testing"

	"sweet-shop/internal/database"
	"sweet-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func iptr(v int) *int         { return &v }

func TestCreateSweet(t *testing.T) {
	t.Cleanup(func() { newID = uuid.NewString })
	newID = func() string { return sweetID }

	var calls []queryCall
	db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{})}
	s, err := CreateSweet(context.Background(), db, &model.Sweet{Name: "Fudge", Category: model.CategoryToffee, Price: 0, Quantity: 0})
	require.NoError(t, err)
	require.Equal(t, sweetID, s.ID)
	require.Equal(t, model.DefaultImageURL, s.ImageURL)
	require.Equal(t, []any{sweetID, "Fudge", "Toffee", 0.0, 0, "", model.DefaultImageURL}, calls[0].args)

	db.QueryRowFn = recordQueryRow(&calls, &fakeRow{err: &pgconn.PgError{Code: "23514"}})
	_, err = CreateSweet(context.Background(), db, &model.Sweet{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicate)
}

func TestListSweets(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		a, b := sampleSweet(), sampleSweet()
		b.Name = "Sour Gummy"
		db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY created_at")
			require.Empty(t, args)
			return &fakeRows{data: []model.Sweet{*a, *b}}, nil
		}}
		got, err := ListSweets(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, []model.Sweet{*a, *b}, got)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{}, nil
		}}
		got, err := ListSweets(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got, 0)
	})

	t.Run("errors", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("q")
		}}
		_, err := ListSweets(context.Background(), db)
		require.EqualError(t, err, "ListSweets: q")

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: []model.Sweet{*sampleSweet()}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListSweets(context.Background(), db)
		require.EqualError(t, err, "ListSweets: scan")

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{err: errors.New("rows")}, nil
		}
		_, err = ListSweets(context.Background(), db)
		require.EqualError(t, err, "ListSweets: rows")
	})
}

func TestGetSweetByID(t *testing.T) {
	_, err := GetSweetByID(context.Background(), &database.FakeDB{}, "123")
	require.ErrorIs(t, err, ErrNotFound)

	var calls []queryCall
	db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: sampleSweet()})}
	s, err := GetSweetByID(context.Background(), db, sweetID)
	require.NoError(t, err)
	require.Equal(t, sampleSweet(), s)
}

func TestSweetFilterWhere(t *testing.T) {
	where, args := SweetFilter{}.where()
	require.Empty(t, where)
	require.Nil(t, args)

	where, args = SweetFilter{Name: "50%_off"}.where()
	require.Equal(t, " WHERE name ILIKE $1", where)
	require.Equal(t, []any{`%50\%\_off%`}, args)

	where, args = SweetFilter{Category: "Chocolate", MaxPrice: fptr(4)}.where()
	require.Equal(t, " WHERE category = $1 AND price <= $2", where)
	require.Equal(t, []any{"Chocolate", 4.0}, args)

	where, args = SweetFilter{Name: "choc", Category: "Chocolate", MinPrice: fptr(3), MaxPrice: fptr(4.5)}.where()
	require.Equal(t, " WHERE name ILIKE $1 AND category = $2 AND price >= $3 AND price <= $4", where)
	require.Equal(t, []any{"%choc%", "Chocolate", 3.0, 4.5}, args)
}

func TestSearchSweets(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		gotSQL, gotArgs = sql, args
		return &fakeRows{data: []model.Sweet{*sampleSweet()}}, nil
	}}
	got, err := SearchSweets(context.Background(), db, SweetFilter{Category: "Chocolate"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, gotSQL, "FROM sweets WHERE category = $1 ORDER BY")
	require.Equal(t, []any{"Chocolate"}, gotArgs)
}

func TestUpdateSweet(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, err := UpdateSweet(ctx, &database.FakeDB{}, "x", SweetPatch{Name: sptr("Fudge")})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("zero values are written", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: sampleSweet()})}
		_, err := UpdateSweet(ctx, db, sweetID, SweetPatch{Price: fptr(0), Description: sptr("")})
		require.NoError(t, err)
		require.Contains(t, calls[0].sql, "SET price = $1, description = $2, updated_at = now() WHERE id = $3")
		require.Equal(t, []any{0.0, "", sweetID}, calls[0].args)
	})

	t.Run("all fields", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: sampleSweet()})}
		_, err := UpdateSweet(ctx, db, sweetID, SweetPatch{
			Name: sptr("A"), Category: sptr("Candy"), Price: fptr(1), Quantity: iptr(2),
			Description: sptr("d"), ImageURL: sptr("u"),
		})
		require.NoError(t, err)
		require.Len(t, calls[0].args, 7)
		require.Contains(t, calls[0].sql, "image_url = $6")
	})

	t.Run("empty patch reads", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: sampleSweet()})}
		_, err := UpdateSweet(ctx, db, sweetID, SweetPatch{})
		require.NoError(t, err)
		require.Contains(t, calls[0].sql, "SELECT")
	})

	t.Run("missing", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{err: pgx.ErrNoRows})}
		_, err := UpdateSweet(ctx, db, sweetID, SweetPatch{Quantity: iptr(1)})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteSweet(t *testing.T) {
	ctx := context.Background()
	tag := "DELETE 1"
	db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag(tag), nil
	}}
	require.NoError(t, DeleteSweet(ctx, db, sweetID))

	tag = "DELETE 0"
	require.ErrorIs(t, DeleteSweet(ctx, db, sweetID), ErrNotFound)
	require.ErrorIs(t, DeleteSweet(ctx, db, "bad"), ErrNotFound)
}

func TestDeleteSweetsByName(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.Contains(t, sql, "ANY($1)")
		require.Equal(t, []any{[]string{"a", "b"}}, args)
		return pgconn.NewCommandTag("DELETE 2"), nil
	}}
	n, err := DeleteSweetsByName(context.Background(), db, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestPurchaseSweet(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		after := sampleSweet()
		after.Quantity = 7
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: after})}
		s, err := PurchaseSweet(ctx, db, sweetID, 3)
		require.NoError(t, err)
		require.Equal(t, 7, s.Quantity)
		require.Contains(t, calls[0].sql, "quantity >= $1")
		require.Equal(t, []any{3, sweetID}, calls[0].args)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls,
			&fakeRow{err: pgx.ErrNoRows},
			&fakeRow{sweet: sampleSweet()},
		)}
		_, err := PurchaseSweet(ctx, db, sweetID, 11)
		require.ErrorIs(t, err, ErrInsufficientStock)
		require.Len(t, calls, 2)
	})

	t.Run("quantity beyond int4 still reaches the conditional update", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls,
			&fakeRow{err: pgx.ErrNoRows},
			&fakeRow{sweet: sampleSweet()},
		)}
		_, err := PurchaseSweet(ctx, db, sweetID, 3000000000)
		require.ErrorIs(t, err, ErrInsufficientStock)
		require.Equal(t, []any{3000000000, sweetID}, calls[0].args)
	})

	t.Run("missing", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{err: pgx.ErrNoRows})}
		_, err := PurchaseSweet(ctx, db, sweetID, 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{err: errors.New("down")})}
		_, err := PurchaseSweet(ctx, db, sweetID, 1)
		require.EqualError(t, err, "PurchaseSweet: down")
	})
}

func TestRestockSweet(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		after := sampleSweet()
		after.Quantity = 15
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{sweet: after})}
		s, err := RestockSweet(ctx, db, sweetID, 5)
		require.NoError(t, err)
		require.Equal(t, 15, s.Quantity)
		require.Contains(t, calls[0].sql, "quantity = quantity + $1::bigint")
		require.Contains(t, calls[0].sql, "quantity <= $3::bigint - $1::bigint")
		require.Equal(t, []any{5, sweetID, model.MaxQuantity}, calls[0].args)
	})

	t.Run("past the stock limit", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls,
			&fakeRow{err: pgx.ErrNoRows},
			&fakeRow{sweet: sampleSweet()},
		)}
		_, err := RestockSweet(ctx, db, sweetID, model.MaxQuantity)
		require.ErrorIs(t, err, ErrStockLimit)
		require.Len(t, calls, 2)
	})

	t.Run("missing", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{err: pgx.ErrNoRows})}
		_, err := RestockSweet(ctx, db, sweetID, 5)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = RestockSweet(ctx, db, "bad", 5)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		var calls []queryCall
		db := &database.FakeDB{QueryRowFn: recordQueryRow(&calls, &fakeRow{err: errors.New("down")})}
		_, err := RestockSweet(ctx, db, sweetID, 1)
		require.EqualError(t, err, "RestockSweet: down")
	})
}

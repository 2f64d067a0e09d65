// Package sweets serves the inventory endpoints.
package sweets

import (
	"context"
	"log/slog"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/model"
	"sweet-shop/internal/store"

	"github.com/pkg/errors"
)

const (
	MsgNotFound          = "Sweet not found"
	MsgRemoved           = "Sweet removed"
	MsgPurchased         = "Purchase successful"
	MsgRestocked         = "Restock successful"
	MsgInvalidQuantity   = "Invalid quantity"
	MsgInsufficientStock = "Insufficient stock"
	MsgNoFields          = "No fields to update"
	MsgInvalidBody       = "Invalid request body"
)

// Catalog is the cached full listing. *service.Catalog satisfies it.
type Catalog interface {
	Get(ctx context.Context) ([]model.Sweet, bool, error)
	Put(ctx context.Context, sweets []model.Sweet) error
	Invalidate(ctx context.Context) error
}

// StockChecker is notified of every purchase result.
type StockChecker interface {
	Check(s *model.Sweet) bool
}

var (
	createSweet   = store.CreateSweet
	listSweets    = store.ListSweets
	getSweetByID  = store.GetSweetByID
	searchSweets  = store.SearchSweets
	updateSweet   = store.UpdateSweet
	deleteSweet   = store.DeleteSweet
	purchaseSweet = store.PurchaseSweet
	restockSweet  = store.RestockSweet
)

// storeError maps store sentinels onto user-facing errors.
func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperror.Wrap(err, apperror.KindNotFound, MsgNotFound)
	case errors.Is(err, store.ErrInsufficientStock):
		return apperror.Wrap(err, apperror.KindValidation, MsgInsufficientStock)
	case errors.Is(err, store.ErrStockLimit):
		return apperror.Wrap(err, apperror.KindValidation, api.MsgQuantityLimit)
	}
	return err
}

// invalidate drops the cached listing; a cache failure only costs staleness
// until the entry expires.
func invalidate(ctx context.Context, catalog Catalog) {
	if err := catalog.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "catalog invalidation failed", "error", err)
	}
}

package sweets

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

func bindQuantity(c echo.Context) (int, error) {
	var req api.QuantityRequest
	if err := c.Bind(&req); err != nil {
		return 0, apperror.Wrap(err, apperror.KindValidation, MsgInvalidQuantity)
	}
	if err := c.Validate(&req); err != nil {
		return 0, apperror.Wrap(err, apperror.KindValidation, MsgInvalidQuantity)
	}
	return req.Quantity, nil
}

// PurchaseSweetHandler 購買糖果（扣庫存）
// @Summary     購買糖果
// @Description 以單一條件式 UPDATE 扣庫存，庫存不足時不會變更
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path     string              true "糖果 ID"
// @Param       body body     api.QuantityRequest true "購買數量"
// @Success     200  {object} api.StockResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/{id}/purchase [post]
func PurchaseSweetHandler(db database.DB, catalog Catalog, stock StockChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		qty, err := bindQuantity(c)
		if err != nil {
			return api.WriteError(c, err)
		}

		ctx := c.Request().Context()
		sweet, err := purchaseSweet(ctx, db, c.Param("id"), qty)
		if err != nil {
			return api.WriteError(c, storeError(err))
		}
		invalidate(ctx, catalog)
		stock.Check(sweet)
		return c.JSON(http.StatusOK, api.StockResponse{Message: MsgPurchased, Sweet: sweet})
	}
}

// RestockSweetHandler 補貨（管理員）
// @Summary     補貨
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path     string              true "糖果 ID"
// @Param       body body     api.QuantityRequest true "補貨數量"
// @Success     200  {object} api.StockResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/{id}/restock [post]
func RestockSweetHandler(db database.DB, catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		qty, err := bindQuantity(c)
		if err != nil {
			return api.WriteError(c, err)
		}

		ctx := c.Request().Context()
		sweet, err := restockSweet(ctx, db, c.Param("id"), qty)
		if err != nil {
			return api.WriteError(c, storeError(err))
		}
		invalidate(ctx, catalog)
		return c.JSON(http.StatusOK, api.StockResponse{Message: MsgRestocked, Sweet: sweet})
	}
}

package sweets

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// DeleteSweetHandler 刪除糖果（管理員）
// @Summary     刪除糖果
// @Tags        sweets
// @Produce     json
// @Param       id  path     string true "糖果 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/{id} [delete]
func DeleteSweetHandler(db database.DB, catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := deleteSweet(ctx, db, c.Param("id")); err != nil {
			return api.WriteError(c, storeError(err))
		}
		invalidate(ctx, catalog)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: MsgRemoved})
	}
}

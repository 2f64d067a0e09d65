package sweets

import (
	"log/slog"
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// ListSweetsHandler 取得所有糖果
// @Summary     糖果列表
// @Description 依建立時間排序，優先讀取 Redis 快取
// @Tags        sweets
// @Produce     json
// @Success     200 {array}  model.Sweet
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets [get]
func ListSweetsHandler(db database.DB, catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cached, ok, err := catalog.Get(ctx)
		if err != nil {
			slog.WarnContext(ctx, "catalog read failed", "error", err)
		}
		if ok {
			return c.JSON(http.StatusOK, cached)
		}

		sweets, err := listSweets(ctx, db)
		if err != nil {
			return api.WriteError(c, err)
		}
		if err := catalog.Put(ctx, sweets); err != nil {
			slog.WarnContext(ctx, "catalog write failed", "error", err)
		}
		return c.JSON(http.StatusOK, sweets)
	}
}

package sweets

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// GetSweetHandler 依 ID 取得糖果
// @Summary     取得糖果
// @Tags        sweets
// @Produce     json
// @Param       id  path     string true "糖果 ID"
// @Success     200 {object} model.Sweet
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/{id} [get]
func GetSweetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sweet, err := getSweetByID(c.Request().Context(), db, c.Param("id"))
		if err != nil {
			return api.WriteError(c, storeError(err))
		}
		return c.JSON(http.StatusOK, sweet)
	}
}

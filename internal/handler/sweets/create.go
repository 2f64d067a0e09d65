package sweets

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// CreateSweetHandler 新增糖果（管理員）
// @Summary     新增糖果
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateSweetRequest true "糖果資料"
// @Success     201  {object} model.Sweet
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets [post]
func CreateSweetHandler(db database.DB, catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateSweetRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgInvalidBody))
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, api.ValidationError(err))
		}

		ctx := c.Request().Context()
		sweet, err := createSweet(ctx, db, req.Sweet())
		if err != nil {
			return api.WriteError(c, storeError(err))
		}
		invalidate(ctx, catalog)
		return c.JSON(http.StatusCreated, sweet)
	}
}

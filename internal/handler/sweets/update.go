package sweets

import (
	"net/http"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"
	"sweet-shop/internal/model"
	"sweet-shop/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateSweetHandler 部分更新糖果（管理員）
// @Summary     更新糖果
// @Description 只更新請求中出現的欄位；0 與空字串視為有提供
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path     string                 true "糖果 ID"
// @Param       body body     api.UpdateSweetRequest true "欲更新的欄位"
// @Success     200  {object} model.Sweet
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/{id} [put]
func UpdateSweetHandler(db database.DB, catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateSweetRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindValidation, MsgInvalidBody))
		}
		if req.Empty() {
			return api.WriteError(c, apperror.Validation(MsgNoFields))
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, api.ValidationError(err))
		}

		ctx := c.Request().Context()
		sweet, err := updateSweet(ctx, db, c.Param("id"), patchFrom(&req))
		if err != nil {
			return api.WriteError(c, storeError(err))
		}
		invalidate(ctx, catalog)
		return c.JSON(http.StatusOK, sweet)
	}
}

func patchFrom(req *api.UpdateSweetRequest) store.SweetPatch {
	p := store.SweetPatch{
		Name:        req.Name.Ptr(),
		Category:    req.Category.Ptr(),
		Price:       req.Price.Ptr(),
		Quantity:    req.Quantity.Ptr(),
		Description: req.Description.Ptr(),
		ImageURL:    req.ImageURL.Ptr(),
	}
	// an empty image resets to the placeholder
	if p.ImageURL != nil && *p.ImageURL == "" {
		def := model.DefaultImageURL
		p.ImageURL = &def
	}
	return p
}

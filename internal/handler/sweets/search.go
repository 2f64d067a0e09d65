package sweets

import (
	"net/http"
	"strconv"
	"strings"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/database"
	"sweet-shop/internal/store"

	"github.com/labstack/echo/v4"
)

// SearchSweetsHandler 依名稱、分類與價格區間搜尋
// @Summary     搜尋糖果
// @Description 名稱不分大小寫部分比對，分類完全比對，價格區間含端點；條件以 AND 合併
// @Tags        sweets
// @Produce     json
// @Param       name     query    string false "名稱關鍵字"
// @Param       category query    string false "分類"
// @Param       minPrice query    number false "最低價格"
// @Param       maxPrice query    number false "最高價格"
// @Success     200      {array}  model.Sweet
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /api/sweets/search [get]
func SearchSweetsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.SweetFilter{
			Name:     strings.TrimSpace(c.QueryParam("name")),
			Category: strings.TrimSpace(c.QueryParam("category")),
		}
		var err error
		if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
			return api.WriteError(c, err)
		}
		if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
			return api.WriteError(c, err)
		}

		sweets, err := searchSweets(c.Request().Context(), db, filter)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, sweets)
	}
}

// priceParam parses an optional price bound; an empty value means unbounded.
func priceParam(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindValidation, "Invalid "+name)
	}
	return &v, nil
}

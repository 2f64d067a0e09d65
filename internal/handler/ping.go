package handler

import (
	"net/http"
	"time"

	"sweet-shop/internal/api"
	"sweet-shop/internal/apperror"
	"sweet-shop/internal/cache"
	"sweet-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /api/ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindInternal, "database unhealthy"))
		}
		if err := rdb.Set(ctx, "ping", time.Now().Unix(), time.Minute).Err(); err != nil {
			return api.WriteError(c, apperror.Wrap(err, apperror.KindInternal, "cache unhealthy"))
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}

// WelcomeHandler answers the API root.
// @Summary     Welcome
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func WelcomeHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to Sweet Shop API"})
}

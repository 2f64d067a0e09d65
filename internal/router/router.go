// File: internal/router/router.go
package router

import (
	"sweet-shop/internal/cache"
	"sweet-shop/internal/config"
	"sweet-shop/internal/database"
	"sweet-shop/internal/handler"
	"sweet-shop/internal/handler/auth"
	"sweet-shop/internal/handler/sweets"
	"sweet-shop/internal/middleware"
	"sweet-shop/internal/service"

	"github.com/labstack/echo/v4"
)

// Deps 路由所需的相依元件
type Deps struct {
	DB         database.DB
	Cache      cache.Cache
	Tokens     *service.TokenService
	Catalog    sweets.Catalog
	Stock      sweets.StockChecker
	SuperAdmin config.SuperAdmin
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.GET("/", handler.WelcomeHandler)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	authn := middleware.Authenticate(d.DB, d.Tokens, d.SuperAdmin.Email)

	// 註冊與登入
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(d.DB, d.Tokens, d.SuperAdmin.Email))
	apiAuth.POST("/login", auth.LoginHandler(d.DB, d.Tokens, d.SuperAdmin.Email))
	apiAuth.POST("/admin-login", auth.AdminLoginHandler(d.DB, d.Tokens, d.SuperAdmin))
	apiAuth.GET("/me", auth.MeHandler, authn)

	// 糖果庫存；認證逐路由掛載，未知路徑才會落到 404。search 需在 :id 之前註冊
	admin := []echo.MiddlewareFunc{authn, middleware.RequireAdmin}
	apiSweets := api.Group("/sweets")
	apiSweets.GET("", sweets.ListSweetsHandler(d.DB, d.Catalog), authn)
	apiSweets.GET("/search", sweets.SearchSweetsHandler(d.DB), authn)
	apiSweets.GET("/:id", sweets.GetSweetHandler(d.DB), authn)
	apiSweets.POST("/:id/purchase", sweets.PurchaseSweetHandler(d.DB, d.Catalog, d.Stock), authn)

	// 管理員專屬
	apiSweets.POST("", sweets.CreateSweetHandler(d.DB, d.Catalog), admin...)
	apiSweets.PUT("/:id", sweets.UpdateSweetHandler(d.DB, d.Catalog), admin...)
	apiSweets.DELETE("/:id", sweets.DeleteSweetHandler(d.DB, d.Catalog), admin...)
	apiSweets.POST("/:id/restock", sweets.RestockSweetHandler(d.DB, d.Catalog), admin...)
}

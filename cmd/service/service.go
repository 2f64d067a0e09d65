// @title        Sweet Shop API
// @version      1.0
// @description  Sweet Shop 庫存管理後端 API 文件
// @host         localhost:5000
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweet-shop/internal/api"
	"sweet-shop/internal/cache"
	"sweet-shop/internal/config"
	"sweet-shop/internal/database"
	"sweet-shop/internal/logging"
	"sweet-shop/internal/middleware"
	"sweet-shop/internal/router"
	"sweet-shop/internal/service"
	"sweet-shop/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "sweet-shop/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serve
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// serve runs e until SIGINT or SIGTERM, then drains in-flight requests.
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Debug = !cfg.IsProduction()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("Logger 建立失敗: %w", err)
	}
	slog.SetDefault(logger)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := newEcho(cfg, logger)
	router.Setup(e, router.Deps{
		DB:         db,
		Cache:      rdb,
		Tokens:     service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Catalog:    service.NewCatalog(rdb, cfg.CatalogCacheTTL),
		Stock:      service.NewLowStockAlerter(wp, logger, cfg.LowStockThreshold),
		SuperAdmin: cfg.SuperAdmin(),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.AppEnv)
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

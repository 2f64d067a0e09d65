package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweet-shop/internal/cache"
	"sweet-shop/internal/config"
	"sweet-shop/internal/database"
	"sweet-shop/internal/logging"
	"sweet-shop/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	loadConfig = config.Load
	newLogger = logging.New
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = serve
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func stubInfra(called map[string]bool) {
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubInfra(called)
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6380", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	var srv *echo.Echo
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":5050", addr)
		srv = e
		return nil
	}

	t.Setenv("PORT", "5050")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6380")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")

	require.NoError(t, run())
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}

	require.True(t, srv.Debug)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Route not found")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sweet Shop API")
	require.Contains(t, rec.Body.String(), `"basePath": "/"`)
	require.Contains(t, rec.Body.String(), `"/api/sweets/{id}/purchase"`)
	require.NotContains(t, rec.Body.String(), `"/api/": {`)
}

func TestRunProductionDisablesDebug(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(map[string]bool{})
	var srv *echo.Echo
	startServer = func(e *echo.Echo, _ string) error { srv = e; return nil }

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("SUPER_ADMIN_PASSWORD", "a-real-password")
	require.NoError(t, run())
	require.False(t, srv.Debug)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("PORT", "-1")
	require.Error(t, run())
	t.Setenv("PORT", "5000")

	t.Setenv("LOG_FORMAT", "xml")
	require.Error(t, run())
	t.Setenv("LOG_FORMAT", "json")

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(map[string]bool{})
	startServer = func(*echo.Echo, string) error { return nil }
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	main()
	require.Equal(t, 0, exitCode)
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}

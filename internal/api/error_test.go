package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweet-shop/internal/apperror"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	e := echo.New()

	t.Run("production hides stack", func(t *testing.T) {
		e.Debug = false
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, WriteError(c, apperror.NotFound("Sweet not found")))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"message":"Sweet not found"}`, rec.Body.String())
	})

	t.Run("debug includes stack", func(t *testing.T) {
		e.Debug = true
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, WriteError(c, errors.New("connection reset")))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "connection reset", body.Message)
		require.Contains(t, body.Stack, "TestWriteError")
	})
}

func TestWriteErrorLogsInternal(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/sweets", nil), httptest.NewRecorder())
	cause := errors.Wrap(errors.New("connection refused"), "CreateSweet")
	require.NoError(t, WriteError(c, cause))
	require.Contains(t, buf.String(), `"msg":"request failed"`)
	require.Contains(t, buf.String(), `"error":"CreateSweet: connection refused"`)
	require.Contains(t, buf.String(), `"path":"/api/sweets"`)
	require.Equal(t, cause, c.Get(ContextErrorKey))

	buf.Reset()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, WriteError(c, apperror.NotFound("Sweet not found")))
	require.Empty(t, buf.String())
	require.NotNil(t, c.Get(ContextErrorKey))
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"sweet-shop/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello", "k", "v")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"hello"`)
	require.Contains(t, out, `"env":"development"`)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = "text"
	cfg.LogLevel = "debug"
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("visible")
	require.Contains(t, buf.String(), "msg=visible")
}

func TestNewErrors(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := New(cfg)
	require.Error(t, err)

	cfg = config.Default()
	cfg.LogFormat = "xml"
	_, err = New(cfg)
	require.Error(t, err)
}

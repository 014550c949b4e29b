package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func TestInitLogger(t *testing.T) {
	t.Run("Respects the configured level", func(t *testing.T) {
		logger := initLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, &bytes.Buffer{})

		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("Writes json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := initLogger(&config.Config{LogLevel: "error", LogFormat: "json"}, buf)

		logger.Error("boom")

		assert.Contains(t, buf.String(), `"msg":"boom"`)
	})

	t.Run("Writes text when asked", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := initLogger(&config.Config{LogLevel: "debug", LogFormat: "text"}, buf)

		logger.Debug("boom")

		assert.Contains(t, buf.String(), "msg=boom")
	})
}

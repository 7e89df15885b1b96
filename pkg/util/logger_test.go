package util

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("development logs at debug", func(t *testing.T) {
		logger := NewLogger("development")
		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("production logs at info", func(t *testing.T) {
		logger := NewLogger("production")
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}

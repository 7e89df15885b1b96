package util

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger: debug-level text in development so
// dispatch traces are readable, info-level JSON everywhere else. Every line
// carries the service name for log aggregation.
func NewLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("service", "guidepanel")
}

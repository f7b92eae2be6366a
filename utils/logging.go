package utils

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. "json" is meant for deployed
// environments where logs are scraped line by line; anything else gets
// the human-readable text handler.
func NewLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})
	}
	return slog.New(handler)
}

// Package logger configures the process-wide slog default.
package logger

import (
	"log/slog"
	"os"
)

// Setup installs the default logger: human-readable text at Debug level in
// development, JSON at Info level in production.
func Setup(production bool) {
	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	slog.SetDefault(slog.New(handler))
}

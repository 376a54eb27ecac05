// Package logging provides structured logging configuration using log/slog.
//
// Request handlers get loggers carrying chi's request ID so every line
// written while serving a query can be correlated. The importer uses the
// same handler setup with an import run ID attached instead.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// Setup configures the global slog logger to write to stdout.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	SetupWriter(os.Stdout, level, format)
}

// SetupWriter configures the global slog logger to write to w.
func SetupWriter(w io.Writer, level, format string) {
	slog.SetDefault(slog.New(NewHandler(w, level, format)))
}

// NewHandler builds a text or JSON handler for the given level.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext returns a logger enriched with request context.
//
// When ctx carries a chi RequestID the returned logger includes
// request_id in all entries.
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	runLogger := logging.WithFields(ctx, "run_id", runID, "workbook", name)
//	runLogger.Info("import started")
//	// ... later ...
//	runLogger.Info("import completed", "rows", inserted)
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}

package bboxgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger wraps slog.Logger with bboxgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewConsoleLogger creates a Logger for interactive use: colored,
// compact text on stderr. Color is disabled when stderr is not a terminal.
func NewConsoleLogger(level slog.Level) *Logger {
	handler := tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds the persisted file or blob name to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs a load from a file or blob store.
func (l *Logger) LogLoad(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "collection loaded",
			"name", name,
			"records", records,
		)
	}
}

// LogSave logs a save to a file or blob store.
func (l *Logger) LogSave(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"records", records,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "collection saved",
			"name", name,
			"records", records,
		)
	}
}

// LogIngest logs a CSV tree ingestion.
func (l *Logger) LogIngest(ctx context.Context, root string, files, records, skipped int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "csv ingestion failed",
			"root", root,
			"error", err,
		)
	case skipped > 0:
		l.WarnContext(ctx, "csv ingestion completed with skipped rows",
			"root", root,
			"files", files,
			"records", records,
			"skipped", skipped,
		)
	default:
		l.InfoContext(ctx, "csv ingestion completed",
			"root", root,
			"files", files,
			"records", records,
		)
	}
}

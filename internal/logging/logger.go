// Package logging настраивает глобальный slog-логгер.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger — общий структурированный логгер приложения.
var Logger = slog.Default()

// InitLogger настраивает глобальный логгер.
// level: "debug", "info", "warn", "error" (по умолчанию "info")
// format: "json" или "text" (по умолчанию "text")
func InitLogger(level, format string) {
	Logger = New(os.Stdout, level, format)
	slog.SetDefault(Logger)
}

// New собирает логгер поверх w; вынесено отдельно для тестов.
func New(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard — логгер, который ничего не пишет (для тестов).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

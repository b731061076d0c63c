// Package logger provides structured logging for chatstat.
// It uses Go's slog package for logging with configurable levels and formats.
package logger

import (
	"log/slog"
	"os"
)

// NewLogger creates a new slog Logger with the specified level and format.
// If jsonOutput is true, logs will be formatted as JSON, otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// LogParseSummary reports how much of the transcript could not be used.
// Logged at warn when anything was skipped so a clean run stays quiet.
func LogParseSummary(log *slog.Logger, totalMessages, skippedLines, droppedMessages int) {
	if skippedLines == 0 && droppedMessages == 0 {
		log.Debug("transcript parsed cleanly", "messages", totalMessages)
		return
	}
	log.Warn("transcript parsed with skips",
		"messages", totalMessages,
		"skipped_lines", skippedLines,
		"dropped_messages", droppedMessages)
}

package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds the application logger, sets it as the slog default, and
// returns it. The level string comes from PUNCHLIST_LOG_LEVEL and accepts
// "debug", "info", "warn", or "error" (case-insensitive); anything else,
// including the unset empty string, means info.
func Setup(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}

package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

func init() {
	// Usable before Init, e.g. in tests.
	Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// Init installs the JSON handler at the given level ("debug", "info", "warn", "error").
func Init(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// ParseLevel maps a level name to slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var global atomic.Pointer[slog.Logger]

func init() {
	global.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// InitGlobalLogger replaces the process-wide logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	global.Store(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	global.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	global.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	global.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	global.Load().Error(msg, args...)
}

package converter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// =============================================================================
// LOGGER
// =============================================================================

// Logger is an interface for logging.
// Messages use printf-style formatting.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// ParseLevel maps a configured log level name to a slog level.
// Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// NewLogger returns a Logger writing slog text records to w.
//
// PARAMETERS:
//   - w: The destination, usually os.Stderr.
//   - level: The minimum level ("debug", "info", "warn", "error").
func NewLogger(w io.Writer, level string) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &slogLogger{logger: slog.New(handler)}
}

// defaultLogger logs at info level to stderr.
func defaultLogger() Logger {
	return NewLogger(os.Stderr, "info")
}

// slogLogger adapts a *slog.Logger to the printf-style Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(msg, args...))
}

func (l *slogLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(msg, args...))
}

func (l *slogLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *slogLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(msg, args...))
}

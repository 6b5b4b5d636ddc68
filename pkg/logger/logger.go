package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/devraulu/urlenc/pkg/config"
)

// InitLogger installs the default slog logger writing to w. Verbose forces
// the debug level regardless of the configured one.
func InitLogger(cfg *config.Config, w io.Writer, verbose bool) *slog.Logger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	level := parseLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		opts.ReplaceAttr = numericLevel
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(
		"name", "urlenc",
		"pid", os.Getpid(),
		"hostname", hostname,
		"run_id", uuid.NewString(),
	)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// numericLevel rewrites the level attribute as a bunyan integer.
func numericLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok {
		return slog.Int(a.Key, bunyanLevel(l))
	}
	return a
}

var bunyanLevels = []struct {
	min   slog.Level
	value int
}{
	{slog.LevelError, 50},
	{slog.LevelWarn, 40},
	{slog.LevelInfo, 30},
	{slog.LevelDebug, 20},
}

// bunyanLevel maps l to the highest bunyan level it reaches, or 10 (trace).
func bunyanLevel(l slog.Level) int {
	for _, b := range bunyanLevels {
		if l >= b.min {
			return b.value
		}
	}
	return 10
}

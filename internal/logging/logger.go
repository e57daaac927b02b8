package logging

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if val := strings.ToLower(os.Getenv("MINTDROP_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				source := a.Value.Any().(*slog.Source)
				source.File = shortPath(source.File)
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)

	return slog.New(handler)
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	// Try to make paths relative to the module root
	if idx := strings.Index(file, "mintdrop-cli/"); idx != -1 {
		return file[idx+13:]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	// Last resort: just the filename
	parts := strings.Split(file, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return file
}

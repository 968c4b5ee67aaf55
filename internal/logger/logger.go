package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DefaultDir is where relative log file names are placed
var DefaultDir = filepath.Join(xdg.StateHome, "examdown")

func levelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Init installs the default slog logger. An empty path logs to stderr; a
// relative path is placed under DefaultDir. The returned closer releases the
// log file.
func Init(path, level string) (io.Closer, error) {
	loglevel, ok := levelFromString(level)
	if !ok && level != "" {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(DefaultDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = logFile, logFile
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: loglevel})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

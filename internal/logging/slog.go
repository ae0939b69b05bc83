// Package logging sets up the migration tool's slog output: stdout plus an
// optional session log file, fanned out through a MultiHandler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SlogManager manages slog-based logging for one tool invocation.
type SlogManager struct {
	logger *slog.Logger
}

// NewSlogManager creates a new slog-based logging manager.
func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes logging to stdout and, when file is non-nil, a session
// log file.
func (m *SlogManager) Setup(file io.Writer, level string) {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(os.Stdout, handlerOpts))
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, handlerOpts))
	}

	m.logger = slog.New(NewMultiHandler(handlers...))
}

// Logger returns the configured slog.Logger.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// LogFilePath builds a session log file path using OS-appropriate path
// separators.
func LogFilePath(logsDir string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("levelmigrate.%s.log", sessionStart.Format("20060102_150405")),
	)
}

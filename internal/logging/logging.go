// Package logging builds the application logger. The terminal belongs to the
// game while it runs, so log output goes to a rotating file by default.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is the rotating log file used when no path is given on the command line.
const DefaultPath = "~/.jumpy/logs/jumpy.log"

// Options configures New.
type Options struct {
	// Path of the log file. Empty logs to stderr.
	Path  string
	Level string
}

// Logger wraps a charmbracelet logger together with the file it writes to.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New creates a logger with the "jumpy" prefix.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if opts.Path != "" {
		path, err := expandHome(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		w, closer = lj, lj
	}

	return &Logger{
		Logger: newLogger(w, level),
		closer: closer,
	}, nil
}

// Discard returns a logger that drops everything. Platforms fall back to it
// when no logger is configured.
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, log.FatalLevel)}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel accepts debug, info, warn, error and fatal. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return level, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumpy",
	})
	logger.SetLevel(level)
	return logger
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

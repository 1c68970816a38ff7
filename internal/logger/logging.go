// Package logger builds charmbracelet/log loggers for the packages and
// commands of wordhint. Everything logs to stderr; stdout is reserved for
// results and the IPC stream.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log that follows the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() <= log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetupDefault points the global logger at stderr and sets its level from a
// name such as "debug" or "warn". debug forces the debug level regardless of
// name.
func SetupDefault(level string, debug bool) error {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return nil
	}
	if level == "" {
		log.SetLevel(log.WarnLevel)
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.WarnLevel)
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}

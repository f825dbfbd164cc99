package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var _ badger.Logger = (*BadgerLogger)(nil)

// BadgerLogger redirects badger's printf-style logs to the application's slog.Logger.
type BadgerLogger struct {
	log *slog.Logger
}

func NewBadgerLogger(log *slog.Logger) *BadgerLogger {
	return &BadgerLogger{log: log.With("component", "badger")}
}

func (l *BadgerLogger) Errorf(format string, args ...any)   { l.log.Error(clean(format, args)) }
func (l *BadgerLogger) Warningf(format string, args ...any) { l.log.Warn(clean(format, args)) }
func (l *BadgerLogger) Infof(format string, args ...any)    { l.log.Debug(clean(format, args)) }
func (l *BadgerLogger) Debugf(format string, args ...any)   { l.log.Debug(clean(format, args)) }

// badger terminates most lines with a newline
func clean(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

// BadgerOptions opens an on-disk database at path, or an in-memory one when path is empty.
func BadgerOptions(path string, log *slog.Logger, debug bool) badger.Options {
	options := badger.DefaultOptions(path).WithLogger(NewBadgerLogger(log))
	if path == "" {
		options = options.WithInMemory(true)
	}

	if debug {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

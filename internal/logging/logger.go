// Package logging provides the logging interface used for build-phase
// diagnostics in the uht package.
//
// Design: four-level interface (Error, Warn, Info, Debug), adapted from
// the five-level logger used across the wider RocksDB-alike ecosystem
// this module's sibling packages were grown from. There is no Fatalf
// here: nothing in uht or lbq has a "stop the engine" transition to
// trigger — programmer-contract violations panic (see uht and lbq
// doc comments), and there are no recoverable hot-path errors to log.
//
// Log format: YYYY/MM/DD HH:MM:SS LEVEL [component] message
//
// Example: 2026/08/01 09:12:03 DEBUG [uht] phase=count partitions=8 tuples=5000
//
// Component namespace prefixes are used for filtering:
//   - [uht] — hash table build/probe diagnostics
//   - [lbq] — ring queue diagnostics (unused on the hot path by design)
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents the logging level.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs info, warnings, and errors.
	LevelInfo
	// LevelDebug logs everything including debug messages.
	LevelDebug
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Logger is the diagnostic sink a BuildConfig may be given. It is never
// consulted on the probe, enqueue, or dequeue hot paths.
//
// Concurrency: DefaultLogger is safe for concurrent use. User-provided
// implementations must be safe for concurrent use too, since build
// workers may log from multiple goroutines during the same phase.
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// DefaultLogger writes level-filtered lines to an io.Writer using the
// standard library's *log.Logger, which is already safe for concurrent
// use — no additional synchronization is needed here.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
}

// NewDefaultLogger creates a logger at the given level writing to stderr.
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stderr, level)
}

// NewLogger creates a logger at the given level writing to w.
func NewLogger(w io.Writer, level Level) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	if l.level >= LevelError {
		_ = l.logger.Output(2, "ERROR "+fmt.Sprintf(format, args...))
	}
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	if l.level >= LevelWarn {
		_ = l.logger.Output(2, "WARN "+fmt.Sprintf(format, args...))
	}
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	if l.level >= LevelInfo {
		_ = l.logger.Output(2, "INFO "+fmt.Sprintf(format, args...))
	}
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.level >= LevelDebug {
		_ = l.logger.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
	}
}

// Namespace prefixes for log messages.
const (
	// NSUHT is the namespace for hash table build/probe diagnostics.
	NSUHT = "[uht] "
	// NSLBQ is the namespace for ring queue diagnostics.
	NSLBQ = "[lbq] "
)

// discard is the zero-cost logger used when a BuildConfig has none set.
type discard struct{}

func (discard) Errorf(string, ...any) {}
func (discard) Warnf(string, ...any)  {}
func (discard) Infof(string, ...any)  {}
func (discard) Debugf(string, ...any) {}

// Discard is a Logger that drops every message.
var Discard Logger = discard{}

// OrDiscard returns l if non-nil, otherwise Discard.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}

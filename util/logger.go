// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls diagnostic verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Logger writes levelled diagnostics to stderr and user-facing reports
// to stdout. Diagnostics carry level prefixes and, in debug mode,
// timestamps; reports are plain lines the host shell shows verbatim.
type Logger struct {
	level      LogLevel
	diag       io.Writer
	report     io.Writer
	mu         sync.Mutex
	timestamps bool
}

// NewLogger returns a Logger that prints diagnostics at or below the
// given verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	return &Logger{
		level:      LogLevel(verbosity),
		diag:       os.Stderr,
		report:     os.Stdout,
		timestamps: verbosity >= 3, // auto-enable timestamps in debug mode
	}
}

// SetTimestamps enables or disables timestamp prefixes on diagnostics.
func (l *Logger) SetTimestamps(on bool) { l.timestamps = on }

// SetOutput overrides the diagnostic writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.diag = w }

// SetReportOutput overrides the report writer (default: os.Stdout).
func (l *Logger) SetReportOutput(w io.Writer) { l.report = w }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Report prints a user-facing line to stdout regardless of verbosity.
// Outcome reports (delivery result, liveness boolean, discovered port)
// go through here so they stay separable from diagnostics.
func (l *Logger) Report(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.report, format+"\n", args...)
}

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("INF", format, args...)
	}
}

// Warn prints when verbosity ≥ 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("WRN", format, args...)
	}
}

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.diag, "%s [%s] %s\n", ts, level, msg)
	} else {
		fmt.Fprintf(l.diag, "[%s] %s\n", level, msg)
	}
}

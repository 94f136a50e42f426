package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "hn-tui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logFile      *os.File
	logger       = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)
	l.SetOutput(io.Discard)
	return l
}

// output lazily opens the log file so nothing is created until the first entry.
func output() bool {
	if logFile != nil {
		return true
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return false
	}
	logFile = f
	logger.SetOutput(f)
	return true
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if !output() {
		return
	}
	logger.WithError(err).Error("error")
}

// Warn records a non-fatal problem, such as a failed browser launch.
func Warn(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !output() {
		return
	}
	logger.Warnf(format, args...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	if !output() {
		return
	}
	entry := logger.WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Trace(event)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
	logger.SetOutput(io.Discard)
}

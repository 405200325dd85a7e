package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	charmLog "github.com/charmbracelet/log"
)

const (
	defaultLogFile = "emojid.log"
	logPrefix      = "emojid"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sessionID    string
)

// Error writes errors to the shared log file as logfmt lines.
func Error(err error) {
	if err == nil {
		return
	}
	appendEntry(charmLog.LogfmtFormatter, func(l *charmLog.Logger) {
		l.Error(err.Error(), sessionKeyvals()...)
	})
}

// Warn records a recoverable condition with structured key/value context.
func Warn(msg string, keyvals ...interface{}) {
	appendEntry(charmLog.LogfmtFormatter, func(l *charmLog.Logger) {
		l.Warn(msg, append(sessionKeyvals(), keyvals...)...)
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently emitted.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// SetSession tags every subsequent entry with the given picker session id.
func SetSession(id string) {
	mu.Lock()
	sessionID = strings.TrimSpace(id)
	mu.Unlock()
}

// Session returns the active session id, if any.
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	return sessionID
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	appendEntry(charmLog.JSONFormatter, func(l *charmLog.Logger) {
		keyvals := sessionKeyvals()
		if payload != nil {
			keyvals = append(keyvals, "payload", payload)
		}
		l.Info(event, keyvals...)
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
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

// Path returns the file currently receiving log entries.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func sessionKeyvals() []interface{} {
	if id := Session(); id != "" {
		return []interface{}{"session", id}
	}
	return nil
}

func appendEntry(formatter charmLog.Formatter, emit func(*charmLog.Logger)) {
	path := Path()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	logger := charmLog.NewWithOptions(f, charmLog.Options{
		Level:           charmLog.DebugLevel,
		Prefix:          logPrefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
	emit(logger)
}

package debuglog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger appends timestamped lines to a trace file. The zero value and a nil
// *Logger discard everything.
type Logger struct {
	path  string
	mu    sync.Mutex
	clock func() time.Time
}

// New returns a logger writing to path, or nil when path is empty.
func New(path string) *Logger {
	if path == "" {
		return nil
	}
	return &Logger{path: path, clock: time.Now}
}

// Enabled reports whether writes reach a file.
func (l *Logger) Enabled() bool {
	return l != nil && l.path != ""
}

// Printf writes one line. Failures to open or write the file are ignored so
// tracing never changes program behavior.
func (l *Logger) Printf(format string, args ...interface{}) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	now := time.Now
	if l.clock != nil {
		now = l.clock
	}
	timestamp := now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}

// Func adapts the logger to a printf-style hook, returning nil when disabled.
func (l *Logger) Func() func(string, ...interface{}) {
	if !l.Enabled() {
		return nil
	}
	return l.Printf
}

// Package logger provides console logging for leetlens.
//
// Debug, Info and Section output only appears with --verbose, so users can
// follow the catalog load and match pipeline when they ask for it. Warnings
// and errors are always written, since they report collaborator failures
// (catalog, scraper, storage) that otherwise fall back silently.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(always bool, level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(output, "["+level+"] "+prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(false, "DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(false, "INFO", "", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	write(true, "WARN", "", format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	write(true, "ERROR", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scope tags every line with an identifier, typically a search ID.
type Scope struct {
	prefix string
}

// WithID returns a scope whose lines are prefixed with "(id) ".
func WithID(id string) Scope {
	if id == "" {
		return Scope{}
	}
	return Scope{prefix: "(" + id + ") "}
}

// Debug prints a scoped debug message if verbose mode is enabled.
func (s Scope) Debug(format string, args ...any) {
	write(false, "DEBUG", s.prefix, format, args...)
}

// Info prints a scoped informational message if verbose mode is enabled.
func (s Scope) Info(format string, args ...any) {
	write(false, "INFO", s.prefix, format, args...)
}

// Warn prints a scoped warning.
func (s Scope) Warn(format string, args ...any) {
	write(true, "WARN", s.prefix, format, args...)
}

package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool
	output  io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via the WJ_DEBUG environment
// variable or the --verbose flag
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("WJ_DEBUG") != ""
}

// SetVerbose forces debug output on or off regardless of WJ_DEBUG being unset
func SetVerbose(v bool) {
	verbose.Store(v)
}

// SetOutput redirects debug output; nil restores stderr
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, args...)
	}
}

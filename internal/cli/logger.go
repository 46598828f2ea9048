package cli

import (
	"fmt"
	"io"
)

// Logger provides verbose output about compilation and matching.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a new logger writing to out.
func NewLogger(enabled bool, out io.Writer) *Logger {
	return &Logger{
		enabled: enabled,
		out:     out,
	}
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[enfa] "+format+"\n", args...)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

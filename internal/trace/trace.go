// github.com/dcoppa/psi/internal/trace
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

// Package trace provides a minimal leveled logging facility for
// interpreter-internal diagnostics, used only behind the CLI's --trace
// flag. It is a reduced form of the Printf-over-a-writer pattern: no
// output-stream wrapping, no exit-code bookkeeping, just formatted lines
// with a guaranteed trailing newline.
package trace

import (
	"fmt"
	"io"
)

// Logger writes leveled, printf-style lines to an underlying writer.
type Logger struct {
	out io.Writer
}

// New wraps w as a Logger. A nil Logger (the zero value, or simply not
// constructing one) is never required to be checked by callers that
// already guard on a *Logger being nil.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Printf writes "level: message\n" to the underlying writer, formatting
// message with args if any are given and adding a trailing newline if
// the formatted text doesn't already end with one.
func (l *Logger) Printf(level, format string, args ...interface{}) {
	if l == nil || l.out == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	line := level + ": " + msg
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += "\n"
	}
	fmt.Fprint(l.out, line)
}

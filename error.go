// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "fmt"

// Error is a PostScript-style error: a taxonomy name plus a short
// human-readable message. Kind is stable and machine-checkable (tests
// and the "stopped" operator inspect it); Message is for humans.
type Error struct {
	Kind    Name
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Text
	}
	return e.Kind.Text + ": " + e.Message
}

func newError(kind Name, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// The error taxonomy. Every operator failure and every parser failure
// reports one of these kinds.
var (
	eStackunderflow     = Name{Text: "stackunderflow"}
	eDictstackunderflow = Name{Text: "dictstackunderflow"}
	eTypecheck          = Name{Text: "typecheck"}
	eRangecheck         = Name{Text: "rangecheck"}
	eUndefined          = Name{Text: "undefined"}
	eUndefinedresult    = Name{Text: "undefinedresult"}
	eDictfull           = Name{Text: "dictfull"}
	eSyntaxerror        = Name{Text: "syntaxerror"}
	eUnmatchedmark      = Name{Text: "unmatchedmark"}
	eLimitcheck         = Name{Text: "limitcheck"}
)

// errQuit unwinds execution all the way to the top-level caller. It is
// not an *Error: "stopped" must never catch it, and it carries no
// taxonomy kind because it is not a PostScript error at all.
type quitSignal struct{}

func (quitSignal) Error() string { return "quit" }

var errQuit error = quitSignal{}

// exitSignal unwinds out of the nearest enclosing for/repeat/loop/forall
// body.
// Like quitSignal it is not an *Error.
type exitSignal struct{}

func (exitSignal) Error() string { return "exit" }

var errExit error = exitSignal{}

// syntaxErrorAt builds a syntaxerror with source position context.
func syntaxErrorAt(line, col int, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: eSyntaxerror, Message: fmt.Sprintf("line %d, col %d: %s", line+1, col+1, msg)}
}

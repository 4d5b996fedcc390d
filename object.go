// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "fmt"

// Value is the tagged union that flows through the scanner, the parser,
// the operand stack, and every operator. The concrete types below are
// the only ones that may appear as a Value.
type Value interface{}

// Integer is an exact whole number.
type Integer int64

// Real is an IEEE-754 double.
type Real float64

// Boolean is a truth value.
type Boolean bool

// Mark is the sentinel pushed by "[", "mark", and similar bracketing
// operators, and matched by "]" / "cleartomark".
type Mark struct{}

// Name is an identifier. The same text always denotes the same dictionary
// key regardless of which spelling (literal or executable) produced a
// given occurrence; Executable only controls what the interpreter does
// when it steps over this particular occurrence.
type Name struct {
	Text       string
	Executable bool
}

func (n Name) String() string {
	if n.Executable {
		return n.Text
	}
	return "/" + n.Text
}

// Operator is the handle seeded into the system dictionary for every
// built-in. Dictionaries hold Operator values rather than raw function
// pointers so that resolving a name and printing it with "==" both route
// through the same object.
type Operator struct {
	name string
	fn   func(*Interpreter) error
}

func (op Operator) String() string { return op.name }

// stringBuffer is the mutable cell a String handle points into.
type stringBuffer struct {
	data []byte
}

// String is a handle (buffer, offset, length) onto a shared mutable byte
// buffer. Duplicating a String value (plain Go assignment) duplicates the
// handle, not the buffer: every copy observes mutations made through any
// other copy within the overlapping window. NewString always allocates a
// fresh buffer; getinterval narrows the window over the same buffer.
type String struct {
	buf *stringBuffer
	off int
	len int
}

// NewString allocates a fresh, freshly-owned buffer from b.
func NewString(b []byte) String {
	data := make([]byte, len(b))
	copy(data, b)
	return String{buf: &stringBuffer{data: data}, off: 0, len: len(data)}
}

// Len reports the number of bytes visible through this handle.
func (s String) Len() int { return s.len }

// Bytes returns the window this handle currently denotes. Mutating the
// returned slice mutates the shared buffer.
func (s String) Bytes() []byte { return s.buf.data[s.off : s.off+s.len] }

// At returns the byte at index i within this handle's window.
func (s String) At(i int) byte { return s.buf.data[s.off+i] }

// SetAt mutates the byte at index i within this handle's window; the
// mutation is visible through every other handle covering that byte.
func (s String) SetAt(i int, b byte) { s.buf.data[s.off+i] = b }

// Sub returns a new handle onto the same buffer, windowed to
// [i, i+n) relative to this handle's own window.
func (s String) Sub(i, n int) String {
	return String{buf: s.buf, off: s.off + i, len: n}
}

// SameBuffer reports whether a and b share the same underlying buffer.
func (a String) SameBuffer(b String) bool { return a.buf == b.buf }

func (s String) String() string { return fmt.Sprintf("%q", string(s.Bytes())) }

// arrayBuffer is the mutable cell an Array handle points into.
type arrayBuffer struct {
	data []Value
}

// Array is a handle (buffer, offset, length) onto a shared mutable slice
// of Values, with the same dup-shares/getinterval-views semantics as
// String.
type Array struct {
	buf *arrayBuffer
	off int
	len int
}

// NewArray allocates a fresh array of the given size, filled with
// Integer(0) (this interpreter has no null value).
func NewArray(size int) Array {
	data := make([]Value, size)
	for i := range data {
		data[i] = Integer(0)
	}
	return Array{buf: &arrayBuffer{data: data}, off: 0, len: size}
}

// ArrayOf builds a fresh array owning a copy of vs.
func ArrayOf(vs []Value) Array {
	data := make([]Value, len(vs))
	copy(data, vs)
	return Array{buf: &arrayBuffer{data: data}, off: 0, len: len(data)}
}

func (a Array) Len() int { return a.len }

func (a Array) Values() []Value { return a.buf.data[a.off : a.off+a.len] }

func (a Array) At(i int) Value { return a.buf.data[a.off+i] }

func (a Array) SetAt(i int, v Value) { a.buf.data[a.off+i] = v }

func (a Array) Sub(i, n int) Array {
	return Array{buf: a.buf, off: a.off + i, len: n}
}

func (a Array) SameBuffer(b Array) bool { return a.buf == b.buf }

// procedureBody is the immutable sequence of Values between a matching
// "{" and "}". It is immutable once parsed; only the Procedure handles
// pointing at it vary, by their captured lexical environment.
type procedureBody struct {
	items []Value
}

// Procedure is a handle onto an immutable body plus, under lexical
// scoping, a captured snapshot of the dictionary stack. Duplicating a
// Procedure value duplicates the handle; the body is never copied.
type Procedure struct {
	body *procedureBody
	env  []Dict // nil under dynamic scoping, or before first construction
}

func newProcedure(items []Value) Procedure {
	return Procedure{body: &procedureBody{items: items}}
}

func (p Procedure) Items() []Value { return p.body.items }

// sameBody reports whether two procedures share the same immutable body,
// which is what "eq" means for procedures (identity, not content).
func (p Procedure) sameBody(q Procedure) bool { return p.body == q.body }

// Dict identifiers are compared by their Text for equality purposes, and
// dictionaries key on Text regardless of how a given Name occurrence was
// spelled in source.
func nameKey(n Name) string { return n.Text }

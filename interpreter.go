// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import (
	"io"
	"strings"

	"github.com/dcoppa/psi/internal/trace"
)

// ScopeMode selects how executable names inside a procedure are
// resolved: against the live dictionary stack (Dynamic) or against the
// stack captured when the procedure literal was constructed (Lexical).
type ScopeMode int

const (
	Dynamic ScopeMode = iota
	Lexical
)

const systemDictCapacity = 256

// Interpreter holds everything a running program touches: the operand
// stack, the dictionary stack (whose bottom element is the permanent
// system dictionary), and the scoping mode. It is not safe for
// concurrent use; execution is single-threaded and synchronous by
// design (see spec §5).
type Interpreter struct {
	Operand   []Value
	DictStack []Dict
	Scoping   ScopeMode
	Out       io.Writer
	Trace     *trace.Logger

	// Quit is set once a "quit" has unwound execution back to Exec's
	// top level. A front end (cmd/psi's REPL) checks it after each
	// RunString/Run call to decide whether to keep reading input.
	Quit bool

	systemDict Dict
}

// NewInterpreter builds an interpreter with a freshly seeded system
// dictionary and a single user dictionary above it on the dictionary
// stack, writing print/=/== output to out.
func NewInterpreter(mode ScopeMode, out io.Writer) *Interpreter {
	sys := NewDict(systemDictCapacity)
	populateSystemDict(sys)
	user := NewDict(64)
	return &Interpreter{
		DictStack:  []Dict{sys, user},
		Scoping:    mode,
		Out:        out,
		systemDict: sys,
	}
}

// RunString parses and executes source text against this interpreter's
// existing stacks, as a single value sequence (see spec §4.4: "the
// REPL/file front end feeds the parser's output sequence into this
// operation once").
func (ip *Interpreter) RunString(src string) error {
	values, err := Parse(strings.NewReader(src))
	if err != nil {
		return err
	}
	return ip.Exec(values)
}

// Run is RunString reading from an io.Reader.
func (ip *Interpreter) Run(r io.Reader) error {
	values, err := Parse(r)
	if err != nil {
		return err
	}
	return ip.Exec(values)
}

// Exec steps through a value sequence in order. A "quit" unwinds
// cleanly (nil error, quit is not a failure); any *Error aborts the
// sequence and is returned to the caller with both stacks left in their
// mutated state, per spec §7.
func (ip *Interpreter) Exec(values []Value) error {
	for _, v := range values {
		if err := ip.step(v); err != nil {
			if err == errQuit {
				ip.Quit = true
				return nil
			}
			return err
		}
	}
	return nil
}

// push and pop are the basic operand-stack primitives. Most builtins go
// through them (or popN/peek); a few that work on whole stack ranges
// (mark collection, aload, copy, clear, count, roll) slice ip.Operand
// directly.
func (ip *Interpreter) push(v Value) {
	ip.Operand = append(ip.Operand, v)
}

func (ip *Interpreter) pop() (Value, error) {
	n := len(ip.Operand)
	if n == 0 {
		return nil, newError(eStackunderflow, "operand stack is empty")
	}
	v := ip.Operand[n-1]
	ip.Operand = ip.Operand[:n-1]
	return v, nil
}

// popN pops and returns the top n values in push order (oldest first).
func (ip *Interpreter) popN(n int) ([]Value, error) {
	if len(ip.Operand) < n {
		return nil, newError(eStackunderflow, "need %d operands, have %d", n, len(ip.Operand))
	}
	out := make([]Value, n)
	copy(out, ip.Operand[len(ip.Operand)-n:])
	ip.Operand = ip.Operand[:len(ip.Operand)-n]
	return out, nil
}

// peek returns the value at depth k below the top (0 = top itself)
// without popping anything.
func (ip *Interpreter) peek(k int) (Value, error) {
	n := len(ip.Operand)
	if k < 0 || k >= n {
		return nil, newError(eStackunderflow, "depth %d exceeds stack of %d", k, n)
	}
	return ip.Operand[n-1-k], nil
}

// step implements spec §4.4's stepping rule for a single value.
func (ip *Interpreter) step(v Value) error {
	if ip.Trace != nil {
		ip.Trace.Printf("step", "depth=%d value=%s", len(ip.Operand), Plain(v))
	}
	switch t := v.(type) {
	case Name:
		if !t.Executable {
			ip.push(t)
			return nil
		}
		bound, _, ok := ip.resolve(t.Text)
		if !ok {
			return newError(eUndefined, "%s", t.Text)
		}
		return ip.invoke(bound)
	case Operator:
		return ip.invoke(t)
	case Procedure:
		ip.push(ip.captureIfLexical(t))
		return nil
	default:
		ip.push(v)
		return nil
	}
}

// captureIfLexical attaches a dictionary-stack snapshot to a procedure
// literal at the moment it is pushed as data, if the interpreter is in
// lexical mode and the procedure has not already captured one (e.g. it
// was popped back off the stack by dup and re-pushed).
func (ip *Interpreter) captureIfLexical(p Procedure) Procedure {
	if ip.Scoping != Lexical || p.env != nil {
		return p
	}
	env := make([]Dict, len(ip.DictStack))
	copy(env, ip.DictStack)
	p.env = env
	return p
}

// invoke unconditionally executes v: an Operator calls its handler, a
// Procedure runs its body (installing its captured environment first,
// under lexical scoping), anything else is simply pushed (this is what
// happens when, say, "if" is given a Boolean where it expected a
// Procedure to degenerate into — which typecheck catches before invoke
// is ever reached in practice).
func (ip *Interpreter) invoke(v Value) error {
	switch t := v.(type) {
	case Operator:
		return t.fn(ip)
	case Procedure:
		return ip.execProcedure(t)
	default:
		ip.push(v)
		return nil
	}
}

func (ip *Interpreter) execProcedure(p Procedure) error {
	if p.env != nil {
		saved := ip.DictStack
		ip.DictStack = p.env
		defer func() { ip.DictStack = saved }()
	}
	for _, item := range p.body.items {
		if err := ip.step(item); err != nil {
			return err
		}
	}
	return nil
}

// resolve walks the dictionary stack top to bottom, returning the first
// binding found along with the dictionary that holds it.
func (ip *Interpreter) resolve(name string) (Value, Dict, bool) {
	for j := len(ip.DictStack) - 1; j >= 0; j-- {
		if v, ok := ip.DictStack[j].Get(name); ok {
			return v, ip.DictStack[j], true
		}
	}
	return nil, Dict{}, false
}

// currentDict returns the dictionary "def" writes into: the top of the
// dictionary stack.
func (ip *Interpreter) currentDict() Dict {
	return ip.DictStack[len(ip.DictStack)-1]
}

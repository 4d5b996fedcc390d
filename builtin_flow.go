// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// Control-flow operators: if, ifelse, for, repeat, loop, exit, quit,
// stopped. Grounded on builtin.go's bIf/bIfElse/bFor/bRepeat/bLoop and
// original_source/src/commands.rs's loop/exit (the Rust source is where
// exit-vs-quit's distinct unwinding was resolved from); stopped follows
// the standard PostScript stopped contract.

func opIf(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "if: need a boolean and a procedure")
	}
	cond, err := asBoolean(vs[0], "if")
	if err != nil {
		return err
	}
	proc, err := asProcedure(vs[1], "if")
	if err != nil {
		return err
	}
	if cond {
		return ip.invoke(proc)
	}
	return nil
}

func opIfelse(ip *Interpreter) error {
	vs, err := ip.popN(3)
	if err != nil {
		return newError(eStackunderflow, "ifelse: need a boolean and two procedures")
	}
	cond, err := asBoolean(vs[0], "ifelse")
	if err != nil {
		return err
	}
	ifTrue, err := asProcedure(vs[1], "ifelse")
	if err != nil {
		return err
	}
	ifFalse, err := asProcedure(vs[2], "ifelse")
	if err != nil {
		return err
	}
	if cond {
		return ip.invoke(ifTrue)
	}
	return ip.invoke(ifFalse)
}

// opFor implements "init incr limit proc for". Per the resolved
// mixed-bounds rule, the loop variable stays Integer as long as init, incr,
// and limit all are, and promotes to Real the moment any of them is
// Real (spec.md's coercion rule applied to the induction variable
// itself, rather than the Rust original's always-float64 simplification).
func opFor(ip *Interpreter) error {
	vs, err := ip.popN(4)
	if err != nil {
		return newError(eStackunderflow, "for: need init, incr, limit, and a procedure")
	}
	proc, err := asProcedure(vs[3], "for")
	if err != nil {
		return err
	}
	ii, fi, iincr, fincr, realStep, err := numericPair(vs[0], vs[1], "for")
	if err != nil {
		return err
	}
	flimit, ok := asNumber(vs[2])
	if !ok {
		return newError(eTypecheck, "for: expected a number, got %T", vs[2])
	}
	_, limitIsReal := vs[2].(Real)
	real := realStep || limitIsReal

	if real {
		if fincr == 0 {
			return newError(eRangecheck, "for: increment is zero")
		}
		for x := fi; (fincr > 0 && x <= flimit) || (fincr < 0 && x >= flimit); x += fincr {
			ip.push(Real(x))
			if err := ip.invoke(proc); err != nil {
				if err == errExit {
					return nil
				}
				return err
			}
		}
		return nil
	}

	limit, err := asInteger(vs[2], "for")
	if err != nil {
		return err
	}
	if iincr == 0 {
		return newError(eRangecheck, "for: increment is zero")
	}
	for x := ii; (iincr > 0 && x <= limit) || (iincr < 0 && x >= limit); x += iincr {
		ip.push(x)
		if err := ip.invoke(proc); err != nil {
			if err == errExit {
				return nil
			}
			return err
		}
	}
	return nil
}

func opRepeat(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "repeat: need a count and a procedure")
	}
	n, err := asInteger(vs[0], "repeat")
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(eRangecheck, "repeat: count %d is negative", n)
	}
	proc, err := asProcedure(vs[1], "repeat")
	if err != nil {
		return err
	}
	for i := Integer(0); i < n; i++ {
		if err := ip.invoke(proc); err != nil {
			if err == errExit {
				return nil
			}
			return err
		}
	}
	return nil
}

func opLoop(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "loop: stack is empty")
	}
	proc, err := asProcedure(v, "loop")
	if err != nil {
		return err
	}
	for {
		if err := ip.invoke(proc); err != nil {
			if err == errExit {
				return nil
			}
			return err
		}
	}
}

func opExit(ip *Interpreter) error {
	return errExit
}

func opQuit(ip *Interpreter) error {
	return errQuit
}

// opStopped implements "proc stopped": runs proc, catching any
// PostScript error it raises (including range/typecheck/undefined/
// etc.) and pushing whether one occurred. "quit" and "exit" are not
// *Error values and pass straight through, since stopped traps
// recoverable errors, not program unwinding.
func opStopped(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "stopped: stack is empty")
	}
	proc, err := asProcedure(v, "stopped")
	if err != nil {
		return err
	}
	if err := ip.invoke(proc); err != nil {
		if _, ok := err.(*Error); ok {
			ip.push(Boolean(true))
			return nil
		}
		return err
	}
	ip.push(Boolean(false))
	return nil
}

// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

const maxStringCapacity = 1 << 24

// opString implements "int string", allocating a fresh string of the
// given length filled with zero bytes. Grounded on builtin.go's
// bString; the capacity ceiling is this interpreter's limitcheck
// supplement (spec.md's original "string" contract doesn't bound the
// request, but an unbounded allocation is a denial-of-service footgun
// an interactive REPL shouldn't hand a typo).
func opString(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "string: stack is empty")
	}
	n, err := asInteger(v, "string")
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(eRangecheck, "string: length %d is negative", n)
	}
	if n > maxStringCapacity {
		return newError(eLimitcheck, "string: length %d too large", n)
	}
	ip.push(NewString(make([]byte, n)))
	return nil
}

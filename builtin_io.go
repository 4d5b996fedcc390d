// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "fmt"

// Output operators: print, =, ==. Grounded on builtin.go's bPrint/
// bEquals/bEqualsEquals; format.go supplies the two rendering modes.

func opPrint(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "print: stack is empty")
	}
	s, err := asString(v, "print")
	if err != nil {
		return err
	}
	_, werr := ip.Out.Write(s.Bytes())
	return werr
}

func opEquals(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "=: stack is empty")
	}
	fmt.Fprintln(ip.Out, Plain(v))
	return nil
}

func opEqualsEquals(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "==: stack is empty")
	}
	fmt.Fprintln(ip.Out, PS(v))
	return nil
}

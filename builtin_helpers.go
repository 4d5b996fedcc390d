// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// asInteger, asReal, etc. centralize the "pop already happened, now
// typecheck" pattern so each builtin_*.go file reads as the contract it
// implements rather than a pile of type switches.

func asInteger(v Value, what string) (Integer, error) {
	n, ok := v.(Integer)
	if !ok {
		return 0, newError(eTypecheck, "%s: expected an integer, got %T", what, v)
	}
	return n, nil
}

func asBoolean(v Value, what string) (Boolean, error) {
	b, ok := v.(Boolean)
	if !ok {
		return false, newError(eTypecheck, "%s: expected a boolean, got %T", what, v)
	}
	return b, nil
}

func asString(v Value, what string) (String, error) {
	s, ok := v.(String)
	if !ok {
		return String{}, newError(eTypecheck, "%s: expected a string, got %T", what, v)
	}
	return s, nil
}

func asArray(v Value, what string) (Array, error) {
	a, ok := v.(Array)
	if !ok {
		return Array{}, newError(eTypecheck, "%s: expected an array, got %T", what, v)
	}
	return a, nil
}

func asName(v Value, what string) (Name, error) {
	switch n := v.(type) {
	case Name:
		return n, nil
	case Operator:
		return Name{Text: n.name, Executable: true}, nil
	default:
		return Name{}, newError(eTypecheck, "%s: expected a name, got %T", what, v)
	}
}

func asDict(v Value, what string) (Dict, error) {
	d, ok := v.(Dict)
	if !ok {
		return Dict{}, newError(eTypecheck, "%s: expected a dictionary, got %T", what, v)
	}
	return d, nil
}

func asProcedure(v Value, what string) (Procedure, error) {
	p, ok := v.(Procedure)
	if !ok {
		return Procedure{}, newError(eTypecheck, "%s: expected a procedure, got %T", what, v)
	}
	return p, nil
}

// asNumber reports whether v is Integer or Real, and its value promoted
// to float64 for the cases that need uniform arithmetic (comparisons).
func asNumber(v Value) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Real:
		return float64(n), true
	default:
		return 0, false
	}
}

// numericPair classifies two operands for the arithmetic operators: both
// numeric is required; if either is Real the result promotes to Real.
func numericPair(a, b Value, what string) (ai Integer, af float64, bi Integer, bf float64, real bool, err error) {
	switch x := a.(type) {
	case Integer:
		ai, af = x, float64(x)
	case Real:
		af, real = float64(x), true
	default:
		err = newError(eTypecheck, "%s: expected numbers, got %T", what, a)
		return
	}
	switch y := b.(type) {
	case Integer:
		bi, bf = y, float64(y)
	case Real:
		bf, real = float64(y), true
	default:
		err = newError(eTypecheck, "%s: expected numbers, got %T", what, b)
		return
	}
	return
}

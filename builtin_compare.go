// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "bytes"

// Comparison and boolean operators: eq, ne, lt, le, gt, ge, and, or, not.

// equalValues implements spec §4.4's "eq" contract: numeric cross-type
// equality, text equality for names, byte equality for strings, pointer
// (handle) identity for procedures and dictionaries, and ordinary value
// equality for booleans.
func equalValues(a, b Value) (bool, error) {
	if af, aok := asNumber(a); aok {
		bf, bok := asNumber(b)
		if !bok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return af == bf, nil
	}
	switch x := a.(type) {
	case Boolean:
		y, ok := b.(Boolean)
		if !ok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return x == y, nil
	case Name:
		switch y := b.(type) {
		case Name:
			return x.Text == y.Text, nil
		case Operator:
			return x.Text == y.name, nil
		default:
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
	case Operator:
		switch y := b.(type) {
		case Operator:
			return x.name == y.name, nil
		case Name:
			return x.name == y.Text, nil
		default:
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
	case String:
		y, ok := b.(String)
		if !ok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return bytes.Equal(x.Bytes(), y.Bytes()), nil
	case Procedure:
		y, ok := b.(Procedure)
		if !ok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return x.sameBody(y), nil
	case Dict:
		y, ok := b.(Dict)
		if !ok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return SameDict(x, y), nil
	case Array:
		y, ok := b.(Array)
		if !ok {
			return false, newError(eTypecheck, "eq: mismatched argument types")
		}
		return x.SameBuffer(y) && x.off == y.off && x.len == y.len, nil
	case Mark:
		_, ok := b.(Mark)
		return ok, nil
	default:
		return false, newError(eTypecheck, "eq: equality not implemented for %T", a)
	}
}

func opEq(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "eq: need 2 operands")
	}
	eq, err := equalValues(vs[0], vs[1])
	if err != nil {
		return err
	}
	ip.push(Boolean(eq))
	return nil
}

func opNe(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "ne: need 2 operands")
	}
	eq, err := equalValues(vs[0], vs[1])
	if err != nil {
		return err
	}
	ip.push(Boolean(!eq))
	return nil
}

// ordered reports a<b and a==b for either a numeric pair or a pair of
// strings (lexicographic, unsigned byte order).
func ordered(a, b Value, what string) (lt, eq bool, err error) {
	if af, aok := asNumber(a); aok {
		bf, bok := asNumber(b)
		if !bok {
			return false, false, newError(eTypecheck, "%s: mismatched argument types", what)
		}
		return af < bf, af == bf, nil
	}
	if as, aok := a.(String); aok {
		bs, bok := b.(String)
		if !bok {
			return false, false, newError(eTypecheck, "%s: mismatched argument types", what)
		}
		c := bytes.Compare(as.Bytes(), bs.Bytes())
		return c < 0, c == 0, nil
	}
	return false, false, newError(eTypecheck, "%s: expected numbers or strings", what)
}

func compare(ip *Interpreter, what string, keep func(lt, eq bool) bool) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "%s: need 2 operands", what)
	}
	lt, eq, err := ordered(vs[0], vs[1], what)
	if err != nil {
		return err
	}
	ip.push(Boolean(keep(lt, eq)))
	return nil
}

func opLt(ip *Interpreter) error { return compare(ip, "lt", func(lt, eq bool) bool { return lt }) }
func opLe(ip *Interpreter) error { return compare(ip, "le", func(lt, eq bool) bool { return lt || eq }) }
func opGt(ip *Interpreter) error {
	return compare(ip, "gt", func(lt, eq bool) bool { return !lt && !eq })
}
func opGe(ip *Interpreter) error { return compare(ip, "ge", func(lt, eq bool) bool { return !lt }) }

func opAnd(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "and: need 2 operands")
	}
	switch a := vs[0].(type) {
	case Boolean:
		b, ok := vs[1].(Boolean)
		if !ok {
			return newError(eTypecheck, "and: mismatched argument types")
		}
		ip.push(a && b)
	case Integer:
		b, ok := vs[1].(Integer)
		if !ok {
			return newError(eTypecheck, "and: mismatched argument types")
		}
		ip.push(a & b)
	default:
		return newError(eTypecheck, "and: expected booleans or integers, got %T", a)
	}
	return nil
}

func opOr(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "or: need 2 operands")
	}
	switch a := vs[0].(type) {
	case Boolean:
		b, ok := vs[1].(Boolean)
		if !ok {
			return newError(eTypecheck, "or: mismatched argument types")
		}
		ip.push(a || b)
	case Integer:
		b, ok := vs[1].(Integer)
		if !ok {
			return newError(eTypecheck, "or: mismatched argument types")
		}
		ip.push(a | b)
	default:
		return newError(eTypecheck, "or: expected booleans or integers, got %T", a)
	}
	return nil
}

func opNot(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "not: stack is empty")
	}
	switch n := v.(type) {
	case Boolean:
		ip.push(!n)
	case Integer:
		ip.push(^n)
	default:
		return newError(eTypecheck, "not: expected a boolean or integer, got %T", v)
	}
	return nil
}

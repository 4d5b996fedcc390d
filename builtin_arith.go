// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "math"

// Arithmetic operators. Binary ops follow spec §4.1's coercion rule:
// Integer×Integer stays Integer except for div (always Real); any Real
// operand promotes the result to Real. Integer overflow on add/sub/mul
// also promotes to Real rather than silently wrapping, mirroring
// builtin.go's bAdd/bSub/bMul.

func opAdd(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "add: need 2 operands")
	}
	ai, af, bi, bf, real, err := numericPair(vs[0], vs[1], "add")
	if err != nil {
		return err
	}
	if real {
		ip.push(Real(af + bf))
		return nil
	}
	sum := ai + bi
	if (ai < 0 && bi < 0 && sum >= 0) || (ai > 0 && bi > 0 && sum <= 0) {
		ip.push(Real(af + bf))
		return nil
	}
	ip.push(sum)
	return nil
}

func opSub(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "sub: need 2 operands")
	}
	ai, af, bi, bf, real, err := numericPair(vs[0], vs[1], "sub")
	if err != nil {
		return err
	}
	if real {
		ip.push(Real(af - bf))
		return nil
	}
	diff := ai - bi
	if (ai < 0 && bi > 0 && diff >= 0) || (ai > 0 && bi < 0 && diff <= 0) {
		ip.push(Real(af - bf))
		return nil
	}
	ip.push(diff)
	return nil
}

func opMul(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "mul: need 2 operands")
	}
	ai, af, bi, bf, real, err := numericPair(vs[0], vs[1], "mul")
	if err != nil {
		return err
	}
	if real {
		ip.push(Real(af * bf))
		return nil
	}
	prod := ai * bi
	if ai != 0 && prod/ai != bi {
		ip.push(Real(af * bf))
		return nil
	}
	ip.push(prod)
	return nil
}

func opDiv(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "div: need 2 operands")
	}
	_, af, _, bf, _, err := numericPair(vs[0], vs[1], "div")
	if err != nil {
		return err
	}
	if bf == 0 {
		return newError(eUndefinedresult, "div: division by zero")
	}
	ip.push(Real(af / bf))
	return nil
}

func opIdiv(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "idiv: need 2 operands")
	}
	a, err := asInteger(vs[0], "idiv")
	if err != nil {
		return err
	}
	b, err := asInteger(vs[1], "idiv")
	if err != nil {
		return err
	}
	if b == 0 {
		return newError(eUndefinedresult, "idiv: division by zero")
	}
	ip.push(a / b) // Go's integer division truncates toward zero
	return nil
}

func opMod(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "mod: need 2 operands")
	}
	a, err := asInteger(vs[0], "mod")
	if err != nil {
		return err
	}
	b, err := asInteger(vs[1], "mod")
	if err != nil {
		return err
	}
	if b == 0 {
		return newError(eUndefinedresult, "mod: division by zero")
	}
	ip.push(a % b) // Go's % already carries the dividend's sign
	return nil
}

func opAbs(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "abs: stack is empty")
	}
	switch n := v.(type) {
	case Integer:
		if n < 0 {
			if n == math.MinInt64 {
				ip.push(Real(-float64(n)))
				return nil
			}
			ip.push(-n)
			return nil
		}
		ip.push(n)
	case Real:
		if n < 0 {
			ip.push(-n)
			return nil
		}
		ip.push(n)
	default:
		return newError(eTypecheck, "abs: expected a number, got %T", v)
	}
	return nil
}

func opNeg(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "neg: stack is empty")
	}
	switch n := v.(type) {
	case Integer:
		if n == math.MinInt64 {
			ip.push(Real(-float64(n)))
			return nil
		}
		ip.push(-n)
	case Real:
		ip.push(-n)
	default:
		return newError(eTypecheck, "neg: expected a number, got %T", v)
	}
	return nil
}

func roundLike(ip *Interpreter, what string, f func(float64) float64) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "%s: stack is empty", what)
	}
	switch n := v.(type) {
	case Integer:
		ip.push(n)
	case Real:
		ip.push(Real(f(float64(n))))
	default:
		return newError(eTypecheck, "%s: expected a number, got %T", what, v)
	}
	return nil
}

func opCeiling(ip *Interpreter) error { return roundLike(ip, "ceiling", math.Ceil) }
func opFloor(ip *Interpreter) error   { return roundLike(ip, "floor", math.Floor) }

// opRound rounds half away from zero, matching both Go's math.Round and
// original_source/src/commands.rs's round (Rust's f64::round), so no
// bridging is needed between the two.
func opRound(ip *Interpreter) error { return roundLike(ip, "round", math.Round) }

func opSqrt(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "sqrt: stack is empty")
	}
	f, ok := asNumber(v)
	if !ok {
		return newError(eTypecheck, "sqrt: expected a number, got %T", v)
	}
	if f < 0 {
		return newError(eRangecheck, "sqrt: negative operand %v", f)
	}
	ip.push(Real(math.Sqrt(f)))
	return nil
}

// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// Stack operators: exch, pop, dup, copy, clear, count, index, roll.
// Grounded on builtin.go's bExch/bPop/bDup/bCopy/bIndex/bRoll; count
// and clear are one-liners the teacher also has.

func opExch(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "exch: need 2 operands")
	}
	ip.push(vs[1])
	ip.push(vs[0])
	return nil
}

func opPop(ip *Interpreter) error {
	_, err := ip.pop()
	return err
}

func opDup(ip *Interpreter) error {
	v, err := ip.peek(0)
	if err != nil {
		return newError(eStackunderflow, "dup: stack is empty")
	}
	ip.push(v)
	return nil
}

// opCopy implements both forms spec.md describes plus the object-copy
// form supplemented from the teacher's bCopy: "n copy" duplicates the
// top n stack items in order; "array2 array1 copy" (or dict/string)
// copies the contents of the second-from-top into the top, pushing the
// destination.
func opCopy(ip *Interpreter) error {
	top, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "copy: stack is empty")
	}
	if n, ok := top.(Integer); ok {
		if n < 0 {
			return newError(eRangecheck, "copy: count %d is negative", n)
		}
		items, err := ip.popN(int(n))
		if err != nil {
			return newError(eStackunderflow, "copy: not enough operands for count %d", n)
		}
		ip.Operand = append(ip.Operand, items...)
		ip.Operand = append(ip.Operand, items...)
		return nil
	}

	dst := top
	src, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "copy: stack is empty")
	}
	switch s := src.(type) {
	case Array:
		d, ok := dst.(Array)
		if !ok {
			return newError(eTypecheck, "copy: mismatched argument types")
		}
		if d.Len() < s.Len() {
			return newError(eRangecheck, "copy: destination too small")
		}
		copy(d.Values(), s.Values())
		ip.push(d.Sub(0, s.Len()))
	case String:
		d, ok := dst.(String)
		if !ok {
			return newError(eTypecheck, "copy: mismatched argument types")
		}
		if d.Len() < s.Len() {
			return newError(eRangecheck, "copy: destination too small")
		}
		copy(d.Bytes(), s.Bytes())
		ip.push(d.Sub(0, s.Len()))
	case Dict:
		d, ok := dst.(Dict)
		if !ok {
			return newError(eTypecheck, "copy: mismatched argument types")
		}
		if err := s.copyInto(d); err != nil {
			return err
		}
		ip.push(d)
	default:
		return newError(eTypecheck, "copy: invalid argument type %T", src)
	}
	return nil
}

func opClear(ip *Interpreter) error {
	ip.Operand = ip.Operand[:0]
	return nil
}

func opCount(ip *Interpreter) error {
	ip.push(Integer(len(ip.Operand)))
	return nil
}

func opIndex(ip *Interpreter) error {
	top, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "index: stack is empty")
	}
	n, err := asInteger(top, "index")
	if err != nil {
		return err
	}
	v, err := ip.peek(int(n))
	if err != nil {
		return newError(eRangecheck, "index: depth %d out of range", n)
	}
	ip.push(v)
	return nil
}

// opRoll implements "n j roll": cyclically rolls the top n stack items
// by j positions (positive rolls towards the top).
func opRoll(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "roll: need n and j")
	}
	n, err := asInteger(vs[0], "roll")
	if err != nil {
		return err
	}
	j, err := asInteger(vs[1], "roll")
	if err != nil {
		return err
	}
	if n < 0 || int(n) > len(ip.Operand) {
		return newError(eRangecheck, "roll: n=%d out of range", n)
	}
	if n == 0 {
		return nil
	}
	window, err := ip.popN(int(n))
	if err != nil {
		return err
	}
	shift := int(j) % int(n)
	if shift < 0 {
		shift += int(n)
	}
	rolled := make([]Value, n)
	for i, v := range window {
		rolled[(i+shift)%int(n)] = v
	}
	ip.Operand = append(ip.Operand, rolled...)
	return nil
}

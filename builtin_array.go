// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// maxArrayCapacity matches the teacher's maxArraySize exactly.
const maxArrayCapacity = 65536

// Array construction and iteration: [, ], mark, cleartomark, array,
// aload, astore, forall. Grounded on builtin.go's bMark/bArray/bAload/
// bAstore/bForAll; unlike "{"/"}", which the parser nests eagerly into
// a Procedure body, "[" and "]" reach the interpreter as ordinary
// executable names and are handled entirely at runtime via the mark
// convention, so everything between them executes normally (e.g.
// "[ 1 2 add ]" pushes a one-element array containing 3, not the
// literal tokens "1 2 add").

// opArrayOpen behaves exactly like "mark"; "[" is defined separately so
// that a future redefinition of "mark" alone doesn't change "["'s
// behavior.
func opArrayOpen(ip *Interpreter) error {
	ip.push(Mark{})
	return nil
}

func opMark(ip *Interpreter) error {
	ip.push(Mark{})
	return nil
}

// opArrayClose collects everything back to the nearest mark into a
// fresh array, in stack order, and discards the mark.
func opArrayClose(ip *Interpreter) error {
	items, err := collectToMark(ip, "]")
	if err != nil {
		return err
	}
	ip.push(ArrayOf(items))
	return nil
}

func collectToMark(ip *Interpreter, what string) ([]Value, error) {
	for i := len(ip.Operand) - 1; i >= 0; i-- {
		if _, ok := ip.Operand[i].(Mark); ok {
			items := make([]Value, len(ip.Operand)-i-1)
			copy(items, ip.Operand[i+1:])
			ip.Operand = ip.Operand[:i]
			return items, nil
		}
	}
	return nil, newError(eUnmatchedmark, "%s: no matching mark", what)
}

func opCleartomark(ip *Interpreter) error {
	_, err := collectToMark(ip, "cleartomark")
	return err
}

func opArray(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "array: stack is empty")
	}
	n, err := asInteger(v, "array")
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(eRangecheck, "array: size %d is negative", n)
	}
	if n > maxArrayCapacity {
		return newError(eLimitcheck, "array: size %d too large", n)
	}
	ip.push(NewArray(int(n)))
	return nil
}

func opAload(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "aload: stack is empty")
	}
	a, err := asArray(v, "aload")
	if err != nil {
		return err
	}
	ip.Operand = append(ip.Operand, a.Values()...)
	ip.push(a)
	return nil
}

func opAstore(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "astore: stack is empty")
	}
	a, err := asArray(v, "astore")
	if err != nil {
		return err
	}
	items, err := ip.popN(a.Len())
	if err != nil {
		return newError(eStackunderflow, "astore: not enough operands for array of length %d", a.Len())
	}
	copy(a.Values(), items)
	ip.push(a)
	return nil
}

// opForall implements "obj proc forall" over Array, String, and Dict:
// for each element (or byte, as an Integer, or key/value pair) push it
// and execute proc. A Dict's iteration order is its sorted key order
// (see Dict.Keys), not insertion order, since Go gives dictionaries no
// ordering to preserve in the first place.
func opForall(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "forall: need an object and a procedure")
	}
	proc, err := asProcedure(vs[1], "forall")
	if err != nil {
		return err
	}
	switch obj := vs[0].(type) {
	case Array:
		for _, item := range obj.Values() {
			ip.push(item)
			if err := ip.invoke(proc); err != nil {
				if err == errExit {
					return nil
				}
				return err
			}
		}
	case String:
		for i := 0; i < obj.Len(); i++ {
			ip.push(Integer(obj.At(i)))
			if err := ip.invoke(proc); err != nil {
				if err == errExit {
					return nil
				}
				return err
			}
		}
	case Dict:
		for _, k := range obj.Keys() {
			v, _ := obj.Get(k)
			ip.push(Name{Text: k})
			ip.push(v)
			if err := ip.invoke(proc); err != nil {
				if err == errExit {
					return nil
				}
				return err
			}
		}
	default:
		return newError(eTypecheck, "forall: expected a dict, string, or array, got %T", vs[0])
	}
	return nil
}

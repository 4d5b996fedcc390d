// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// Indexed-access operators shared between strings and arrays: get, put,
// getinterval, putinterval. get and put also accept a dict (key lookup
// and key definition) per spec §4.4's composite-object table. Grounded
// on builtin.go's bGet/bPut/bGetInterval/bPutInterval, generalized to
// cover Dict's "get" and "put" forms as well.

func opGet(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "get: need an object and an index")
	}
	switch obj := vs[0].(type) {
	case Array:
		i, err := asInteger(vs[1], "get")
		if err != nil {
			return err
		}
		if i < 0 || int(i) >= obj.Len() {
			return newError(eRangecheck, "get: index %d out of range", i)
		}
		ip.push(obj.At(int(i)))
	case String:
		i, err := asInteger(vs[1], "get")
		if err != nil {
			return err
		}
		if i < 0 || int(i) >= obj.Len() {
			return newError(eRangecheck, "get: index %d out of range", i)
		}
		ip.push(Integer(obj.At(int(i))))
	case Dict:
		name, err := asName(vs[1], "get")
		if err != nil {
			return err
		}
		v, ok := obj.Get(nameKey(name))
		if !ok {
			return newError(eUndefined, "%s", name.Text)
		}
		ip.push(v)
	default:
		return newError(eTypecheck, "get: expected a dict, string, or array, got %T", vs[0])
	}
	return nil
}

func opPut(ip *Interpreter) error {
	vs, err := ip.popN(3)
	if err != nil {
		return newError(eStackunderflow, "put: need an object, an index, and a value")
	}
	switch obj := vs[0].(type) {
	case Array:
		i, err := asInteger(vs[1], "put")
		if err != nil {
			return err
		}
		if i < 0 || int(i) >= obj.Len() {
			return newError(eRangecheck, "put: index %d out of range", i)
		}
		obj.SetAt(int(i), vs[2])
	case String:
		i, err := asInteger(vs[1], "put")
		if err != nil {
			return err
		}
		b, err := asInteger(vs[2], "put")
		if err != nil {
			return err
		}
		if i < 0 || int(i) >= obj.Len() {
			return newError(eRangecheck, "put: index %d out of range", i)
		}
		if b < 0 || b > 255 {
			return newError(eRangecheck, "put: byte value %d out of range", b)
		}
		obj.SetAt(int(i), byte(b))
	case Dict:
		name, err := asName(vs[1], "put")
		if err != nil {
			return err
		}
		return obj.Def(nameKey(name), vs[2])
	default:
		return newError(eTypecheck, "put: expected a dict, string, or array, got %T", vs[0])
	}
	return nil
}

func opGetinterval(ip *Interpreter) error {
	vs, err := ip.popN(3)
	if err != nil {
		return newError(eStackunderflow, "getinterval: need an object, an index, and a count")
	}
	i, err := asInteger(vs[1], "getinterval")
	if err != nil {
		return err
	}
	n, err := asInteger(vs[2], "getinterval")
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(eRangecheck, "getinterval: count %d is negative", n)
	}
	switch obj := vs[0].(type) {
	case Array:
		if i < 0 || int(i+n) > obj.Len() {
			return newError(eRangecheck, "getinterval: interval out of range")
		}
		ip.push(obj.Sub(int(i), int(n)))
	case String:
		if i < 0 || int(i+n) > obj.Len() {
			return newError(eRangecheck, "getinterval: interval out of range")
		}
		ip.push(obj.Sub(int(i), int(n)))
	default:
		return newError(eTypecheck, "getinterval: expected a string or array, got %T", vs[0])
	}
	return nil
}

// opPutinterval implements "dst index src putinterval", copying src's
// elements into dst starting at index. Because String and Array are
// handles onto shared buffers, overlapping src and dst windows within
// the same buffer are legal: both the String and the Array branch copy
// src into a temporary first, so dst receives src's contents as they
// were before the copy began.
func opPutinterval(ip *Interpreter) error {
	vs, err := ip.popN(3)
	if err != nil {
		return newError(eStackunderflow, "putinterval: need an object, an index, and a source")
	}
	i, err := asInteger(vs[1], "putinterval")
	if err != nil {
		return err
	}
	if i < 0 {
		return newError(eRangecheck, "putinterval: index %d is negative", i)
	}
	switch dst := vs[0].(type) {
	case Array:
		src, err := asArray(vs[2], "putinterval")
		if err != nil {
			return err
		}
		if int(i)+src.Len() > dst.Len() {
			return newError(eRangecheck, "putinterval: source does not fit")
		}
		tmp := make([]Value, src.Len())
		copy(tmp, src.Values())
		copy(dst.Values()[i:], tmp)
	case String:
		src, err := asString(vs[2], "putinterval")
		if err != nil {
			return err
		}
		if int(i)+src.Len() > dst.Len() {
			return newError(eRangecheck, "putinterval: source does not fit")
		}
		tmp := make([]byte, src.Len())
		copy(tmp, src.Bytes())
		copy(dst.Bytes()[i:], tmp)
	default:
		return newError(eTypecheck, "putinterval: expected a string or array, got %T", vs[0])
	}
	return nil
}

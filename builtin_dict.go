// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

const maxDictCapacity = 65536

// Dictionary operators: dict, length, maxlength, begin, end, def, known,
// where, load, bind. Grounded on builtin.go's bDict/bDef/bBegin/bEnd/
// bKnown/bWhere/bLoad/bBindProc.

func opDict(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "dict: stack is empty")
	}
	n, err := asInteger(v, "dict")
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(eRangecheck, "dict: capacity %d is negative", n)
	}
	if n > maxDictCapacity {
		return newError(eLimitcheck, "dict: capacity %d too large", n)
	}
	ip.push(NewDict(int(n)))
	return nil
}

func opLength(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "length: stack is empty")
	}
	switch t := v.(type) {
	case Dict:
		ip.push(Integer(t.Len()))
	case String:
		ip.push(Integer(t.Len()))
	case Array:
		ip.push(Integer(t.Len()))
	case Procedure:
		ip.push(Integer(len(t.Items())))
	default:
		return newError(eTypecheck, "length: expected a dict, string, or array, got %T", v)
	}
	return nil
}

func opMaxlength(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "maxlength: stack is empty")
	}
	d, err := asDict(v, "maxlength")
	if err != nil {
		return err
	}
	ip.push(Integer(d.Maxlen()))
	return nil
}

func opBegin(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "begin: stack is empty")
	}
	d, err := asDict(v, "begin")
	if err != nil {
		return err
	}
	ip.DictStack = append(ip.DictStack, d)
	return nil
}

func opEnd(ip *Interpreter) error {
	if len(ip.DictStack) <= 1 {
		return newError(eDictstackunderflow, "end: already at the system dictionary")
	}
	ip.DictStack = ip.DictStack[:len(ip.DictStack)-1]
	return nil
}

func opDef(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "def: need key and value")
	}
	name, err := asName(vs[0], "def")
	if err != nil {
		return err
	}
	return ip.currentDict().Def(nameKey(name), vs[1])
}

func opKnown(ip *Interpreter) error {
	vs, err := ip.popN(2)
	if err != nil {
		return newError(eStackunderflow, "known: need a dict and a name")
	}
	d, err := asDict(vs[0], "known")
	if err != nil {
		return err
	}
	name, err := asName(vs[1], "known")
	if err != nil {
		return err
	}
	_, ok := d.Get(nameKey(name))
	ip.push(Boolean(ok))
	return nil
}

func opWhere(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "where: stack is empty")
	}
	name, err := asName(v, "where")
	if err != nil {
		return err
	}
	for j := len(ip.DictStack) - 1; j >= 0; j-- {
		if _, ok := ip.DictStack[j].Get(nameKey(name)); ok {
			ip.push(ip.DictStack[j])
			ip.push(Boolean(true))
			return nil
		}
	}
	ip.push(Boolean(false))
	return nil
}

func opLoad(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "load: stack is empty")
	}
	name, err := asName(v, "load")
	if err != nil {
		return err
	}
	bound, _, ok := ip.resolve(nameKey(name))
	if !ok {
		return newError(eUndefined, "%s", name.Text)
	}
	ip.push(bound)
	return nil
}

func opCurrentdict(ip *Interpreter) error {
	ip.push(ip.currentDict())
	return nil
}

// opBind walks a procedure's body, replacing any occurrence of an
// executable name that currently resolves to an Operator with that
// Operator directly, so a later redefinition of the name elsewhere
// leaves this procedure's behavior unchanged. Recurses into nested
// procedure literals. Grounded on builtin.go's bindProc.
func opBind(ip *Interpreter) error {
	v, err := ip.pop()
	if err != nil {
		return newError(eStackunderflow, "bind: stack is empty")
	}
	p, err := asProcedure(v, "bind")
	if err != nil {
		return err
	}
	ip.bindBody(p.body.items)
	ip.push(p)
	return nil
}

func (ip *Interpreter) bindBody(items []Value) {
	for i, item := range items {
		switch t := item.(type) {
		case Name:
			if !t.Executable {
				continue
			}
			if bound, _, ok := ip.resolve(t.Text); ok {
				if op, ok := bound.(Operator); ok {
					items[i] = op
				}
			}
		case Procedure:
			ip.bindBody(t.body.items)
		}
	}
}

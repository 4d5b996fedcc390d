// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

// populateSystemDict seeds every built-in operator, plus the true/false
// Boolean constants, into sys. Grounded on builtin.go's init-time
// table that maps operator names to Go functions; systemDictCapacity
// in interpreter.go is sized to this table with headroom.
func populateSystemDict(sys Dict) {
	ops := []struct {
		name string
		fn   func(*Interpreter) error
	}{
		// stack
		{"exch", opExch},
		{"pop", opPop},
		{"dup", opDup},
		{"copy", opCopy},
		{"clear", opClear},
		{"count", opCount},
		{"index", opIndex},
		{"roll", opRoll},

		// arithmetic
		{"add", opAdd},
		{"sub", opSub},
		{"mul", opMul},
		{"div", opDiv},
		{"idiv", opIdiv},
		{"mod", opMod},
		{"abs", opAbs},
		{"neg", opNeg},
		{"ceiling", opCeiling},
		{"floor", opFloor},
		{"round", opRound},
		{"sqrt", opSqrt},

		// comparison / boolean
		{"eq", opEq},
		{"ne", opNe},
		{"lt", opLt},
		{"le", opLe},
		{"gt", opGt},
		{"ge", opGe},
		{"and", opAnd},
		{"or", opOr},
		{"not", opNot},

		// dictionaries
		{"dict", opDict},
		{"length", opLength},
		{"maxlength", opMaxlength},
		{"begin", opBegin},
		{"end", opEnd},
		{"def", opDef},
		{"known", opKnown},
		{"where", opWhere},
		{"load", opLoad},
		{"bind", opBind},
		{"currentdict", opCurrentdict},

		// strings and arrays
		{"string", opString},
		{"array", opArray},
		{"mark", opMark},
		{"[", opArrayOpen},
		{"]", opArrayClose},
		{"cleartomark", opCleartomark},
		{"aload", opAload},
		{"astore", opAstore},
		{"forall", opForall},
		{"get", opGet},
		{"put", opPut},
		{"getinterval", opGetinterval},
		{"putinterval", opPutinterval},

		// control flow
		{"if", opIf},
		{"ifelse", opIfelse},
		{"for", opFor},
		{"repeat", opRepeat},
		{"loop", opLoop},
		{"exit", opExit},
		{"quit", opQuit},
		{"stopped", opStopped},

		// output
		{"print", opPrint},
		{"=", opEquals},
		{"==", opEqualsEquals},
	}

	for _, o := range ops {
		sys.Def(o.name, Operator{name: o.name, fn: o.fn})
	}

	sys.Def("true", Boolean(true))
	sys.Def("false", Boolean(false))
}

package psi

import "testing"

func TestPopulateSystemDictSeedsTrueFalse(t *testing.T) {
	sys := NewDict(systemDictCapacity)
	populateSystemDict(sys)
	v, ok := sys.Get("true")
	if !ok || v != Boolean(true) {
		t.Fatalf("true: got %v, %v", v, ok)
	}
	v, ok = sys.Get("false")
	if !ok || v != Boolean(false) {
		t.Fatalf("false: got %v, %v", v, ok)
	}
}

func TestPopulateSystemDictSeedsOperators(t *testing.T) {
	sys := NewDict(systemDictCapacity)
	populateSystemDict(sys)
	for _, name := range []string{"add", "dict", "forall", "if", "print", "=", "==", "["} {
		v, ok := sys.Get(name)
		if !ok {
			t.Fatalf("%q not defined in system dict", name)
		}
		op, ok := v.(Operator)
		if !ok {
			t.Fatalf("%q: expected Operator, got %T", name, v)
		}
		if op.name != name {
			t.Fatalf("%q: Operator.name = %q", name, op.name)
		}
	}
}

func TestNewInterpreterStartsWithTwoDicts(t *testing.T) {
	ip := NewInterpreter(Dynamic, nil)
	if len(ip.DictStack) != 2 {
		t.Fatalf("got %d dicts on the stack, want 2 (system + user)", len(ip.DictStack))
	}
}

package psi

import "testing"

func TestDictDefAndGet(t *testing.T) {
	d := NewDict(4)
	if err := d.Def("x", Integer(1)); err != nil {
		t.Fatal(err)
	}
	v, ok := d.Get("x")
	if !ok || v != Integer(1) {
		t.Fatalf("Get: got %v, %v", v, ok)
	}
}

func TestDictFullOnNewKeyAtCapacity(t *testing.T) {
	d := NewDict(1)
	if err := d.Def("x", Integer(1)); err != nil {
		t.Fatal(err)
	}
	// Replacing an existing key never trips dictfull.
	if err := d.Def("x", Integer(2)); err != nil {
		t.Fatalf("replacing existing key should succeed: %v", err)
	}
	if err := d.Def("y", Integer(3)); err == nil {
		t.Fatal("expected dictfull inserting a new key past capacity")
	}
}

func TestDictHandleSharesEntries(t *testing.T) {
	d := NewDict(4)
	dup := d
	dup.Def("x", Integer(1))
	if _, ok := d.Get("x"); !ok {
		t.Fatal("duplicated handle should share the underlying dictionary")
	}
}

func TestSameDictIdentity(t *testing.T) {
	a := NewDict(4)
	b := a
	c := NewDict(4)
	if !SameDict(a, b) {
		t.Fatal("duplicated handle should be SameDict")
	}
	if SameDict(a, c) {
		t.Fatal("independently constructed dicts must not be SameDict")
	}
}

func TestDictKeysSortedDeterministic(t *testing.T) {
	d := NewDict(8)
	d.Def("zeta", Integer(1))
	d.Def("alpha", Integer(2))
	d.Def("mu", Integer(3))
	keys := d.Keys()
	want := []string{"alpha", "mu", "zeta"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}

func TestCopyIntoRespectsCapacity(t *testing.T) {
	src := NewDict(4)
	src.Def("a", Integer(1))
	src.Def("b", Integer(2))
	dst := NewDict(1)
	if err := src.copyInto(dst); err == nil {
		t.Fatal("expected dictfull copying 2 entries into a maxlength-1 dict")
	}
}

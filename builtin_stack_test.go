package psi

import (
	"bytes"
	"fmt"
	"testing"
)

// run executes s against a fresh dynamic-scoping interpreter and
// checks the final operand stack depth, mirroring the teacher's
// run(s, stackLen) helper.
func run(s string, stackLen int) (*Interpreter, error) {
	ip := NewInterpreter(Dynamic, &bytes.Buffer{})
	err := ip.RunString(s)
	if err == nil && len(ip.Operand) != stackLen {
		err = fmt.Errorf("stack length is %d, expected %d", len(ip.Operand), stackLen)
	}
	return ip, err
}

func TestOpExch(t *testing.T) {
	ip, err := run("1 2 exch", 2)
	if err != nil {
		t.Fatal(err)
	}
	if ip.Operand[0] != Integer(2) || ip.Operand[1] != Integer(1) {
		t.Fatalf("got %v", ip.Operand)
	}
}

func TestOpDup(t *testing.T) {
	ip, err := run("5 dup", 2)
	if err != nil {
		t.Fatal(err)
	}
	if ip.Operand[0] != Integer(5) || ip.Operand[1] != Integer(5) {
		t.Fatalf("got %v", ip.Operand)
	}
}

func TestOpCopyCountForm(t *testing.T) {
	ip, err := run("1 2 3 2 copy", 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{Integer(1), Integer(2), Integer(3), Integer(2), Integer(3)}
	for i, w := range want {
		if ip.Operand[i] != w {
			t.Fatalf("operand %d: got %v, want %v", i, ip.Operand[i], w)
		}
	}
}

func TestOpCountAndClear(t *testing.T) {
	ip, err := run("1 2 3 count", 4)
	if err != nil {
		t.Fatal(err)
	}
	if ip.Operand[3] != Integer(3) {
		t.Fatalf("count: got %v", ip.Operand[3])
	}
	if _, err := run("1 2 3 clear count", 1); err != nil {
		t.Fatal(err)
	}
}

func TestOpIndex(t *testing.T) {
	ip, err := run("1 2 3 0 index", 4)
	if err != nil {
		t.Fatal(err)
	}
	if ip.Operand[3] != Integer(3) {
		t.Fatalf("0 index should copy the top item, got %v", ip.Operand[3])
	}
}

func TestOpRoll(t *testing.T) {
	ip, err := run("1 2 3 3 1 roll", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{Integer(3), Integer(1), Integer(2)}
	for i, w := range want {
		if ip.Operand[i] != w {
			t.Fatalf("operand %d: got %v, want %v", i, ip.Operand[i], w)
		}
	}
}

func TestOpPopUnderflow(t *testing.T) {
	_, err := run("pop", 0)
	perr, ok := err.(*Error)
	if !ok || perr.Kind != eStackunderflow {
		t.Fatalf("got %v, want stackunderflow", err)
	}
}

package psi

import (
	"bytes"
	"testing"
)

func mustRun(t *testing.T, ip *Interpreter, src string) {
	t.Helper()
	if err := ip.RunString(src); err != nil {
		t.Fatalf("RunString(%q): %v", src, err)
	}
}

func TestAddAndPrint(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "3 4 add =")
	if out.String() != "7\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestDivAlwaysReal(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "10 3 div =")
	if out.String() != "3.3333333333333335\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestDictBeginDefEnd(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "10 dict begin /x 5 def x x add = end")
	if out.String() != "10\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestForLoopSum(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "0 1 1 5 {add} for =")
	if out.String() != "15\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestPutintervalSharesBuffer(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, `
		/orig 10 string def
		orig 0 (XXXXXXXXXX) putinterval
		/view orig 2 3 getinterval def
		view 0 (bye) putinterval
		orig =
	`)
	if out.String() != "XXbyeXXXXX\n" {
		t.Fatalf("expected mutation through the getinterval view to reach orig: %q", out.String())
	}
}

func TestDynamicScopingSeesCallerBinding(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, `
		/x 1 def
		/getx { x } def
		2 dict begin
		/x 2 def
		getx =
		end
	`)
	if out.String() != "2\n" {
		t.Fatalf("dynamic scoping: got %q, want caller's binding (2)", out.String())
	}
}

func TestLexicalScopingCapturesDefiningEnv(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Lexical, &out)
	mustRun(t, ip, `
		/x 1 def
		/getx { x } def
		2 dict begin
		/x 2 def
		getx =
		end
	`)
	if out.String() != "1\n" {
		t.Fatalf("lexical scoping: got %q, want defining env's binding (1)", out.String())
	}
}

func TestArrayLiteralViaMark(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "[ 1 2 3 add ] ==")
	if out.String() != "[1 5]\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestQuitUnwindsCleanly(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	if err := ip.RunString("1 2 add quit 999 999"); err != nil {
		t.Fatalf("quit should not produce an error: %v", err)
	}
	if !ip.Quit {
		t.Fatal("expected Quit to be set")
	}
	if len(ip.Operand) != 1 || ip.Operand[0] != Integer(3) {
		t.Fatalf("operand stack after quit: %v", ip.Operand)
	}
}

func TestUndefinedNameIsError(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	err := ip.RunString("nosuchword")
	perr, ok := err.(*Error)
	if !ok || perr.Kind != eUndefined {
		t.Fatalf("got %v, want undefined", err)
	}
}

func TestStoppedTrapsErrors(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	mustRun(t, ip, "{ 1 0 div } stopped =")
	if out.String() != "true\n" {
		t.Fatalf("got %q", out.String())
	}
}

package psi

import (
	"io"
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) []Value {
	t.Helper()
	s := newScanner(strings.NewReader(src))
	var out []Value
	for {
		v, err := s.scanToken()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("scanToken: %v", err)
		}
		out = append(out, v)
	}
}

func TestScanIntegersAndReals(t *testing.T) {
	toks := scanAll(t, "3 -7 3.14 1e3 -0.5")
	want := []Value{Integer(3), Integer(-7), Real(3.14), Real(1000), Real(-0.5)}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestScanNamesLiteralAndExecutable(t *testing.T) {
	toks := scanAll(t, "add /foo bar")
	want := []Value{
		Name{Text: "add", Executable: true},
		Name{Text: "foo", Executable: false},
		Name{Text: "bar", Executable: true},
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestScanBracketsAsExecutableNames(t *testing.T) {
	toks := scanAll(t, "[ 1 2 ]")
	want := []Value{
		Name{Text: "[", Executable: true},
		Integer(1),
		Integer(2),
		Name{Text: "]", Executable: true},
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestScanString(t *testing.T) {
	toks := scanAll(t, `(hello \(world\)\n)`)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens", len(toks))
	}
	s, ok := toks[0].(String)
	if !ok {
		t.Fatalf("expected String, got %T", toks[0])
	}
	if string(s.Bytes()) != "hello (world)\n" {
		t.Fatalf("got %q", s.Bytes())
	}
}

func TestScanCommentSkipped(t *testing.T) {
	toks := scanAll(t, "1 % a comment\n2")
	want := []Value{Integer(1), Integer(2)}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestScanUnbalancedCloseParenIsSyntaxError(t *testing.T) {
	s := newScanner(strings.NewReader(")"))
	_, err := s.scanToken()
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != eSyntaxerror {
		t.Fatalf("got %v, want syntaxerror", err)
	}
}

package psi

import (
	"strings"
	"testing"
)

func TestParseFlatSequence(t *testing.T) {
	values, err := Parse(strings.NewReader("3 4 add"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{Integer(3), Integer(4), Name{Text: "add", Executable: true}}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("value %d: got %v, want %v", i, values[i], want[i])
		}
	}
}

func TestParseProcedureNestsEagerly(t *testing.T) {
	values, err := Parse(strings.NewReader("{ 1 2 add }"))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 {
		t.Fatalf("got %d top-level values, want 1", len(values))
	}
	p, ok := values[0].(Procedure)
	if !ok {
		t.Fatalf("expected Procedure, got %T", values[0])
	}
	if len(p.Items()) != 3 {
		t.Fatalf("procedure body has %d items, want 3", len(p.Items()))
	}
}

func TestParseNestedProcedure(t *testing.T) {
	values, err := Parse(strings.NewReader("{ { dup } if }"))
	if err != nil {
		t.Fatal(err)
	}
	outer, ok := values[0].(Procedure)
	if !ok {
		t.Fatalf("expected Procedure, got %T", values[0])
	}
	inner, ok := outer.Items()[0].(Procedure)
	if !ok {
		t.Fatalf("expected nested Procedure, got %T", outer.Items()[0])
	}
	if len(inner.Items()) != 1 {
		t.Fatalf("inner procedure has %d items, want 1", len(inner.Items()))
	}
}

func TestParseBracketsPassThroughAsNames(t *testing.T) {
	// "[" and "]" are not nested by the parser; array construction
	// happens at runtime via the mark convention.
	values, err := Parse(strings.NewReader("[ 1 2 add ]"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{
		Name{Text: "[", Executable: true},
		Integer(1),
		Integer(2),
		Name{Text: "add", Executable: true},
		Name{Text: "]", Executable: true},
	}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d: %v", len(values), len(want), values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("value %d: got %v, want %v", i, values[i], want[i])
		}
	}
}

func TestParseUnmatchedProcedureCloseIsSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("}"))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != eSyntaxerror {
		t.Fatalf("got %v, want syntaxerror", err)
	}
}

func TestParseUnterminatedProcedureIsSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("{ 1 2"))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

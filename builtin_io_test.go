package psi

import (
	"bytes"
	"testing"
)

func TestPrintWritesRawBytes(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	if err := ip.RunString("(hello) print"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEqualsPrintsPlainForm(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	if err := ip.RunString("(hi) ="); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEqualsEqualsPrintsPSForm(t *testing.T) {
	var out bytes.Buffer
	ip := NewInterpreter(Dynamic, &out)
	if err := ip.RunString("(hi) =="); err != nil {
		t.Fatal(err)
	}
	if out.String() != "(hi)\n" {
		t.Fatalf("got %q", out.String())
	}
}

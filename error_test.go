package psi

import "testing"

func TestErrorMessage(t *testing.T) {
	err := newError(eTypecheck, "expected %s, got %s", "integer", "string")
	if err.Error() != "typecheck: expected integer, got string" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestQuitAndExitAreNotErrors(t *testing.T) {
	if _, ok := error(errQuit).(*Error); ok {
		t.Fatal("errQuit must not be a *Error, or stopped would catch it")
	}
	if _, ok := error(errExit).(*Error); ok {
		t.Fatal("errExit must not be a *Error")
	}
}

func TestSyntaxErrorAtIncludesPosition(t *testing.T) {
	err := syntaxErrorAt(2, 5, "unexpected %q", ")")
	if err.Kind != eSyntaxerror {
		t.Fatalf("Kind = %v", err.Kind)
	}
	want := `line 3, col 6: unexpected ")"`
	if err.Message != want {
		t.Fatalf("Message = %q, want %q", err.Message, want)
	}
}

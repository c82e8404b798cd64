package sforth

import (
	"bytes"
	"testing"

	"github.com/scm2000/SForth/internal/config"
)

func newCompilerTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e := New(config.Default(), &out, nil, nil)
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	out.Reset()
	return e, &out
}

func TestCompileRejectsNumericName(t *testing.T) {
	e, out := newCompilerTestEngine(t)
	if err := e.Evaluate(": 5 1 ;"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	want := "Error: not a word, colon definitions must start with a letter\r\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestCompileAbortsOnUndefinedWordInBody(t *testing.T) {
	e, out := newCompilerTestEngine(t)
	if err := e.Evaluate(": broken nosuchword ;"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	want := "Error: undefined word, nosuchword\r\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	// The aborted definition must not have entered the dictionary.
	out.Reset()
	if err := e.Evaluate("broken"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "Error: undefined word, broken\r\n" {
		t.Fatalf("output after aborted definition = %q", got)
	}
}

func TestCompileEmptyBody(t *testing.T) {
	e, out := newCompilerTestEngine(t)
	if err := e.Evaluate(": noop ;"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	out.Reset()

	if err := e.Evaluate("noop"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "" {
		t.Fatalf("output from a no-op word = %q, want empty", got)
	}
}

// TestCompileCallsOddIndexedPrimitive exercises spec.md's canonical
// ": double dup + ; 7 double ." scenario end to end through the
// compiled-word call path (EmitCall -> thumb.Run -> dispatchAddress ->
// Addr.Primitive), not just through the interpreter's direct-dispatch
// path in runEntry. "dup" is registered at an odd index
// (installPrimitives order: + - << >> ! @ pinMode digitalWrite . .s .x
// dup ...), so this is the case that would have aliased to ".x" if the
// Thumb bit were ever masked off a primitive token.
func TestCompileCallsOddIndexedPrimitive(t *testing.T) {
	e, out := newCompilerTestEngine(t)
	if err := e.Evaluate(": double dup + ;"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	out.Reset()

	if err := e.Evaluate("7 double ."); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "14\r\n" {
		t.Fatalf("output = %q, want %q", got, "14\r\n")
	}
}

func TestCompileNestedWordCalls(t *testing.T) {
	e, out := newCompilerTestEngine(t)
	for _, line := range []string{
		": inc 1 + ;",
		": incTwice inc inc ;",
	} {
		if err := e.Evaluate(line); err != nil {
			t.Fatalf("Evaluate(%q) error = %v", line, err)
		}
	}
	out.Reset()

	if err := e.Evaluate("5 incTwice ."); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "7\r\n" {
		t.Fatalf("output = %q, want %q", got, "7\r\n")
	}
}

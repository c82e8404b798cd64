package sforth

import (
	"bytes"
	"testing"

	"github.com/scm2000/SForth/internal/config"
)

func TestPrimPrintSignedNegative(t *testing.T) {
	var out bytes.Buffer
	e := New(config.Default(), &out, nil, nil)
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	out.Reset()

	// 0 1 - underflows to 0xffffffff, which prints as -1 signed.
	if err := e.Evaluate("0 1 - .s"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "-1\r\n" {
		t.Fatalf("output = %q, want %q", got, "-1\r\n")
	}
}

func TestPrimLeftRightShift(t *testing.T) {
	var out bytes.Buffer
	e := New(config.Default(), &out, nil, nil)
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	out.Reset()

	if err := e.Evaluate("1 4 << ."); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "16\r\n" {
		t.Fatalf("output = %q, want %q", got, "16\r\n")
	}

	out.Reset()
	if err := e.Evaluate("16 4 >> ."); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "1\r\n" {
		t.Fatalf("output = %q, want %q", got, "1\r\n")
	}
}

func TestPrimVariableRejectsNumericName(t *testing.T) {
	var out bytes.Buffer
	e := New(config.Default(), &out, nil, nil)
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	out.Reset()

	if err := e.Evaluate("variable 123"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.String(); got != "Error: not a word, non-existent or numeric token for variable\r\n" {
		t.Fatalf("output = %q", got)
	}
}

package diag

import (
	"testing"

	"github.com/lua-front/compiler/pkg/token"
)

func TestSinkEmpty(t *testing.T) {
	s := NewSink()
	if !s.Empty() {
		t.Fatalf("new sink should be empty")
	}

	s.Lexical(token.Position{Line: 1, Column: 1}, "unrecognized character")
	if s.Empty() {
		t.Fatalf("sink should not be empty after Add")
	}
	if len(s.All()) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(s.All()))
	}
}

func TestSinkOrderPreserved(t *testing.T) {
	s := NewSink()
	s.Lexical(token.Position{Line: 1, Column: 1}, "first")
	s.Syntactic(token.Position{Line: 2, Column: 3}, "second")

	all := s.All()
	if all[0].Message != "first" || all[1].Message != "second" {
		t.Fatalf("diagnostics not preserved in insertion order: %+v", all)
	}
}

func TestFormat(t *testing.T) {
	d := Diagnostic{
		Kind:    Lexical,
		Message: "unclosed string",
		Pos:     token.Position{Line: 3, Column: 5},
	}
	got := Format(d)
	want := "error: [token] unclosed string at column 5, line 3."
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatSyntactic(t *testing.T) {
	d := Diagnostic{
		Kind:    Syntactic,
		Message: "expected 'then'",
		Pos:     token.Position{Line: 1, Column: 10},
	}
	got := Format(d)
	want := "error: [parser] expected 'then' at column 10, line 1."
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

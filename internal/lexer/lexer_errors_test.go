package lexer

import (
	"testing"

	"github.com/lua-front/compiler/internal/diag"
	"github.com/lua-front/compiler/pkg/token"
)

func TestIllegalCharacterRecordsDiagnosticAndContinues(t *testing.T) {
	toks, errs := New("x = @ 1").Tokenize()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", errs)
	}
	if errs[0].Kind != diag.Lexical {
		t.Fatalf("expected Lexical diagnostic, got %v", errs[0].Kind)
	}
	want := []token.Type{token.NAME, token.ASSIGN, token.ILLEGAL, token.NUMBER, token.EOF}
	got := tokenTypes(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTildeWithoutEqualsIsIllegal(t *testing.T) {
	toks, errs := New("~").Tokenize()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", errs)
	}
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestMultipleErrorsAccumulateInOrder(t *testing.T) {
	_, errs := New("@ # $ %").Tokenize()
	// '#' and '%' are legal (HASH, PERCENT); '@' and '$' are illegal.
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 diagnostics, got %v", errs)
	}
	if errs[0].Pos.Column != 1 {
		t.Fatalf("expected first diagnostic at column 1, got %+v", errs[0].Pos)
	}
	if errs[1].Pos.Column != 5 {
		t.Fatalf("expected second diagnostic at column 5, got %+v", errs[1].Pos)
	}
}

func TestDiagnosticPositionAnchoredAtLexemeStart(t *testing.T) {
	_, errs := New(`"unterminated`).Tokenize()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", errs)
	}
	if errs[0].Pos != (token.Position{Line: 1, Column: 1}) {
		t.Fatalf("expected diagnostic anchored at opening quote, got %+v", errs[0].Pos)
	}
}

func TestErrorsMethodMirrorsTokenizeDiagnostics(t *testing.T) {
	l := New("x = @")
	_, diags := l.Tokenize()
	if len(l.Errors()) != len(diags) {
		t.Fatalf("Errors() out of sync with Tokenize() diagnostics")
	}
}

package lexer

import (
	"testing"

	"github.com/lua-front/compiler/pkg/token"
)

func TestDecimalIntegerLiteral(t *testing.T) {
	toks, errs := New("42").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].Type != token.NUMBER || toks[0].NumberValue != 42 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestDecimalFloatLiteral(t *testing.T) {
	toks, errs := New("3.14").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].NumberValue != 3.14 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLeadingDotFloat(t *testing.T) {
	toks, errs := New(".5").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].Type != token.NUMBER || toks[0].NumberValue != 0.5 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTrailingDotFloat(t *testing.T) {
	toks, errs := New("7.").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].NumberValue != 7 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestExponentLiteral(t *testing.T) {
	toks, errs := New("1e10 2.5E-3").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].NumberValue != 1e10 {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].NumberValue != 2.5e-3 {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestHexLiteral(t *testing.T) {
	toks, errs := New("0xFF 0X10").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].NumberValue != 255 {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].NumberValue != 16 {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestDigitGroupSeparatorsStripped(t *testing.T) {
	toks, errs := New("1_000_000").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].NumberValue != 1000000 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestUnaryMinusIsNotPartOfNumeral(t *testing.T) {
	toks, errs := New("-1").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if toks[0].Type != token.MINUS {
		t.Fatalf("expected leading MINUS token, got %s", toks[0].Type)
	}
	if toks[1].Type != token.NUMBER || toks[1].NumberValue != 1 {
		t.Fatalf("expected NUMBER(1), got %+v", toks[1])
	}
}

func TestMalformedNumeralMultipleDots(t *testing.T) {
	toks, errs := New("1.2.3").Tokenize()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", errs)
	}
	if toks[0].Type != token.NUMBER || toks[0].NumberValue != 0 {
		t.Fatalf("expected NUMBER(0) placeholder, got %+v", toks[0])
	}
	if toks[0].Literal != "1.2.3" {
		t.Fatalf("expected literal text preserved, got %q", toks[0].Literal)
	}
}

package lexer

import (
	"testing"

	"github.com/lua-front/compiler/pkg/token"
)

func TestPositionTracksLineAndColumn(t *testing.T) {
	toks, _ := New("x\ny = 2").Tokenize()
	// x at line 1, column 1
	if toks[0].Pos != (token.Position{Line: 1, Column: 1}) {
		t.Fatalf("got %+v", toks[0].Pos)
	}
	// y at line 2, column 1
	if toks[1].Pos != (token.Position{Line: 2, Column: 1}) {
		t.Fatalf("got %+v", toks[1].Pos)
	}
	// = at line 2, column 3
	if toks[2].Pos != (token.Position{Line: 2, Column: 3}) {
		t.Fatalf("got %+v", toks[2].Pos)
	}
}

func TestPositionAcrossMultiByteRunes(t *testing.T) {
	toks, _ := New(`"café" x`).Tokenize()
	// the string token starts at column 1; x starts right after,
	// counted in runes, not bytes (é is 2 bytes but 1 rune/column).
	if toks[1].Pos.Column != 8 {
		t.Fatalf("expected column 8, got %d", toks[1].Pos.Column)
	}
}

func TestPositionResetsAfterNewlineInLongString(t *testing.T) {
	toks, _ := New("[[line1\nline2]] x").Tokenize()
	if toks[1].Pos.Line != 2 {
		t.Fatalf("expected NAME on line 2, got line %d", toks[1].Pos.Line)
	}
}

func TestEOFPositionIsAfterLastToken(t *testing.T) {
	toks, _ := New("x").Tokenize()
	eof := toks[len(toks)-1]
	if eof.Type != token.EOF {
		t.Fatalf("expected last token to be EOF, got %s", eof.Type)
	}
	if eof.Pos.Line != 1 {
		t.Fatalf("got %+v", eof.Pos)
	}
}

// Package parser implements a recursive-descent parser over the token
// stream produced by the lexer. Expressions are parsed by a layered
// precedence cascade; the left-recursive prefixexp/var/functioncall
// grammar role is handled by iterative suffix extension rather than
// backtracking.
package parser

import (
	"github.com/lua-front/compiler/internal/diag"
	"github.com/lua-front/compiler/pkg/ast"
	"github.com/lua-front/compiler/pkg/token"
)

// Precedence levels for binary operators, lowest to highest. Unary
// operators bind at precedence Unary, between Multiplicative and Power:
// "-a^b" parses as "-(a^b)" because Power out-binds Unary on the right.
const (
	_ int = iota
	Lowest
	OrPrec
	AndPrec
	Relational // < > <= >= == ~=
	Concat     // .. (right-associative)
	Additive   // + -
	Multiplicative
	Unary // not # - (prefix)
	Power // ^ (right-associative)
)

var binaryPrecedence = map[token.Type]int{
	token.OR:         OrPrec,
	token.AND:        AndPrec,
	token.LESS:       Relational,
	token.GREATER:    Relational,
	token.LESS_EQ:    Relational,
	token.GREATER_EQ: Relational,
	token.EQ:         Relational,
	token.NOT_EQ:     Relational,
	token.CONCAT:     Concat,
	token.PLUS:       Additive,
	token.MINUS:      Additive,
	token.STAR:       Multiplicative,
	token.SLASH:      Multiplicative,
	token.PERCENT:    Multiplicative,
	token.CARET:      Power,
}

// rightAssociative is the set of binary operators that recurse into the
// same precedence level on their right-hand side instead of the next
// level up.
var rightAssociative = map[token.Type]bool{
	token.CONCAT: true,
	token.CARET:  true,
}

// Parser holds the diagnostic sink; it keeps no cursor of its own.
// It never mutates its input; every parse of a
// sub-production takes a cursor by value and returns the cursor
// position it left off at.
type Parser struct {
	sink *diag.Sink
}

// New creates a Parser that reports syntactic diagnostics into sink.
func New(sink *diag.Sink) *Parser {
	return &Parser{sink: sink}
}

// Parse consumes tokens and returns the resulting Chunk. Per the shared
// diagnostic model, the tree is still returned even when diagnostics
// were recorded (best-effort partial tree); the caller inspects the
// sink to decide whether the parse counts as successful.
func (p *Parser) Parse(tokens []token.Token) *ast.Chunk {
	cur := NewTokenCursor(tokens)
	chunk, cur := p.parseChunk(cur)
	if !cur.IsEOF() {
		p.errorf(cur.Position(), "unexpected "+describe(cur.Current())+" after end of chunk")
	}
	return &chunk
}

func (p *Parser) errorf(pos token.Position, message string) {
	p.sink.Syntactic(pos, message)
}

// expect consumes the current token if it matches t, else records a
// syntactic diagnostic anchored at the current token and returns the
// cursor unchanged so the caller can attempt to keep making progress.
func (p *Parser) expect(cur TokenCursor, t token.Type, what string) TokenCursor {
	if cur.Is(t) {
		return cur.Advance()
	}
	p.errorf(cur.Position(), "expected "+what+", got "+describe(cur.Current()))
	return cur
}

func describe(tok token.Token) string {
	if tok.Type == token.NAME || tok.Type == token.STRING {
		return tok.Type.String() + " '" + tok.Literal + "'"
	}
	if tok.Type == token.NUMBER {
		return "number"
	}
	return "'" + tok.Type.String() + "'"
}

// blockFollow reports whether t is one of the tokens that can legally
// terminate a block: a keyword that closes an enclosing construct, or EOF at the
// top level. Statement dispatch stops reading statements once one of
// these is current.
func blockFollow(t token.Type) bool {
	switch t {
	case token.EOF, token.END, token.ELSE, token.ELSEIF, token.UNTIL:
		return true
	default:
		return false
	}
}

// startsStatement reports whether t can be the leading token of a
// statement (used by the chunk state machine to decide when ReadStat
// should stop and fall through to ReadLastStat/Done).
func startsStatement(t token.Type) bool {
	if blockFollow(t) {
		return false
	}
	if t == token.RETURN || t == token.BREAK {
		return false
	}
	return true
}

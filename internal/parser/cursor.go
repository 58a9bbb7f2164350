package parser

import "github.com/lua-front/compiler/pkg/token"

// TokenCursor is an immutable cursor over a fully materialized token
// stream. Every navigation method returns a new cursor value rather than
// mutating receiver state, so a caller can stash a cursor before a
// speculative parse and simply keep the old value if the trial fails —
// no separate undo log is needed.
type TokenCursor struct {
	tokens []token.Token
	index  int
}

// NewTokenCursor wraps a token slice produced by the lexer. tokens must
// be non-empty and end with an EOF sentinel.
func NewTokenCursor(tokens []token.Token) TokenCursor {
	return TokenCursor{tokens: tokens, index: 0}
}

// Current returns the token at the cursor's position.
func (c TokenCursor) Current() token.Token {
	return c.tokens[c.index]
}

// Peek returns the token n positions ahead of the current one. Peek(0)
// is Current(). Past the end of the stream it keeps returning EOF.
func (c TokenCursor) Peek(n int) token.Token {
	i := c.index + n
	if i >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[i]
}

// Advance returns a cursor positioned at the next token.
func (c TokenCursor) Advance() TokenCursor {
	if c.index+1 >= len(c.tokens) {
		return c
	}
	return TokenCursor{tokens: c.tokens, index: c.index + 1}
}

// Is reports whether the current token has the given type.
func (c TokenCursor) Is(t token.Type) bool {
	return c.Current().Type == t
}

// IsAny reports whether the current token matches any of the given types.
func (c TokenCursor) IsAny(types ...token.Type) bool {
	cur := c.Current().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// IsEOF reports whether the cursor is positioned at the end of the stream.
func (c TokenCursor) IsEOF() bool {
	return c.Is(token.EOF)
}

// Position returns the position of the current token, for diagnostics.
func (c TokenCursor) Position() token.Position {
	return c.Current().Pos
}

// Package diag provides the diagnostic sink shared by the lexer and the
// parser. Neither stage halts on error: both append structured records
// here and keep going, so a single run surfaces every problem it finds
// rather than just the first one.
package diag

import "github.com/lua-front/compiler/pkg/token"

// Kind categorizes which stage raised a Diagnostic.
type Kind int

const (
	// Lexical marks a diagnostic raised while scanning characters into
	// tokens (unterminated string, malformed number, stray character).
	Lexical Kind = iota
	// Syntactic marks a diagnostic raised while deriving the grammar
	// from a token stream (unexpected token, missing terminal).
	Syntactic
)

func (k Kind) stageName() string {
	if k == Lexical {
		return "token"
	}
	return "parser"
}

// Diagnostic is a single structured error record: what went wrong, and
// where. Severity is always "error" at this layer — the lexer and
// parser record-and-continue failures, they do not emit warnings.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// Sink is an append-only collection of Diagnostics, used by both the
// lexer and the parser instead of hidden global state. The parser is
// constructed with one; the lexer creates its own in lexer.New and
// returns its contents from Tokenize.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add records a new Diagnostic.
func (s *Sink) Add(kind Kind, pos token.Position, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Kind: kind, Message: message, Pos: pos})
}

// Lexical records a Lexical-kind Diagnostic anchored at pos.
func (s *Sink) Lexical(pos token.Position, message string) {
	s.Add(Lexical, pos, message)
}

// Syntactic records a Syntactic-kind Diagnostic anchored at pos.
func (s *Sink) Syntactic(pos token.Position, message string) {
	s.Add(Syntactic, pos, message)
}

// Empty reports whether no diagnostics were recorded, i.e. the stage
// that owns this sink succeeded.
func (s *Sink) Empty() bool {
	return len(s.diagnostics) == 0
}

// All returns the recorded diagnostics in the order they were added.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// Package token defines the lexical token vocabulary shared by the lexer
// and parser.
package token

import "fmt"

// Position identifies a single character in the source text by 1-based
// line and column. Column counts Unicode code points from the start of
// the line, not bytes or display width.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column", used in diagnostics and
// debug output.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

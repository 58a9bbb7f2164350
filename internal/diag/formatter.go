package diag

import "fmt"

// ansiRed and ansiReset bracket the "error" severity tag in FormatColor
// output; the stage, message and position are left uncolored.
// Kept out of Format itself: color is a terminal-display concern owned
// by the CLI, never by the core lexer/parser.
const (
	ansiRed   = "\033[1;31m"
	ansiReset = "\033[0m"
)

// Format renders a Diagnostic using the host-display contract:
// "{severity}: [{stage}] {message} at column {c}, line {l}."
func Format(d Diagnostic) string {
	return fmt.Sprintf("error: [%s] %s at column %d, line %d.",
		d.Kind.stageName(), d.Message, d.Pos.Column, d.Pos.Line)
}

// FormatColor is Format with the severity tag highlighted for terminals
// that support ANSI escapes.
func FormatColor(d Diagnostic) string {
	return fmt.Sprintf("%serror%s: [%s] %s at column %d, line %d.",
		ansiRed, ansiReset, d.Kind.stageName(), d.Message, d.Pos.Column, d.Pos.Line)
}

// FormatAll renders every diagnostic in a Sink, one per line, in the
// order they were recorded — so a caller sees the full picture of a run
// rather than a single failure.
func FormatAll(s *Sink, color bool) []string {
	out := make([]string, 0, len(s.All()))
	for _, d := range s.All() {
		if color {
			out = append(out, FormatColor(d))
		} else {
			out = append(out, Format(d))
		}
	}
	return out
}

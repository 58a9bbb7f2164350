package cmd

import (
	"fmt"
	"io"
	"os"
)

// evalExpr holds inline source text supplied via -e, shared by the lex
// and parse subcommands.
var evalExpr string

// readSource implements the read_source(path) -> text collaborator
// contract: it is the only place in this module that touches the
// filesystem. An inline expression (if given) takes priority over a
// file argument; when allowStdin is set and neither is given, source is
// read from stdin instead of failing outright.
func readSource(args []string, allowStdin bool) (text string, name string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	if allowStdin {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), "<stdin>", nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}

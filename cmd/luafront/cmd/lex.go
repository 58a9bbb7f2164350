package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lua-front/compiler/internal/diag"
	"github.com/lua-front/compiler/internal/lexer"
	"github.com/lua-front/compiler/pkg/token"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lua source file or expression",
	Long: `Tokenize a Lua program and print the resulting token stream.

Examples:
  luafront lex script.lua
  luafront lex -e "local x = 1 + 2"
  luafront lex --show-pos --show-type script.lua
  luafront lex --only-errors script.lua`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args, false)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		cmd.Printf("Tokenizing: %s\n", name)
		cmd.Printf("Input length: %d bytes\n", len(source))
		cmd.Println("---")
	}

	toks, errs := lexer.New(source).Tokenize()

	for _, tok := range toks {
		if onlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(cmd, tok)
	}

	if verbose {
		cmd.Println("---")
		cmd.Printf("Total tokens: %d\n", len(toks))
		if len(errs) > 0 {
			cmd.Printf("Errors: %d\n", len(errs))
		}
	}

	color, _ := cmd.Flags().GetBool("color")
	if len(errs) > 0 {
		report(cmd, errs, color)
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

func printToken(cmd *cobra.Command, tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}
	switch tok.Type {
	case token.STRING, token.NAME:
		output += fmt.Sprintf(" %q", tok.Literal)
	case token.NUMBER:
		output += fmt.Sprintf(" %v", tok.NumberValue)
	case token.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	default:
		output += " " + tok.Type.String()
	}
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	cmd.Println(output)
}

// report implements the report(diagnostic) collaborator contract: it is
// the single place diagnostics are rendered for the terminal.
func report(cmd *cobra.Command, diagnostics []diag.Diagnostic, color bool) {
	for _, d := range diagnostics {
		if color {
			cmd.PrintErrln(diag.FormatColor(d))
		} else {
			cmd.PrintErrln(diag.Format(d))
		}
	}
}

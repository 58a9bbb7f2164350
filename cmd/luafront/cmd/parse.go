package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lua-front/compiler/internal/diag"
	"github.com/lua-front/compiler/internal/lexer"
	"github.com/lua-front/compiler/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Lua source code and display the syntax tree",
	Long: `Parse Lua 5.1-syntax source code and display the resulting
concrete syntax tree.

If no file is given and -e is not used, source is read from stdin.

Examples:
  luafront parse script.lua
  luafront parse -e "x = 1 + 2 * 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", true, "dump an outline of the syntax tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(args, true)
	if err != nil {
		return err
	}

	color, _ := cmd.Flags().GetBool("color")

	tokens, lexErrs := lexer.New(source).Tokenize()
	if len(lexErrs) > 0 {
		report(cmd, lexErrs, color)
		return fmt.Errorf("found %d lexical error(s)", len(lexErrs))
	}

	sink := diag.NewSink()
	chunk := parser.New(sink).Parse(tokens)
	if !sink.Empty() {
		report(cmd, sink.All(), color)
		return fmt.Errorf("found %d syntax error(s)", len(sink.All()))
	}

	if parseDumpAST {
		emitChunk(cmd.OutOrStdout(), chunk)
	}
	return nil
}

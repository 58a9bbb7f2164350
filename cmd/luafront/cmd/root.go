package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "luafront",
	Short: "Lua 5.1 lexer and parser front end",
	Long: `luafront tokenizes and parses Lua 5.1-syntax source text.

It implements only the front end of a compiler: a cursor-driven lexer
and a recursive-descent parser producing a concrete syntax tree.
Semantic analysis, code generation, and execution are out of scope.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("color", "c", false, "colorize diagnostic output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print extra diagnostics about each run")
}

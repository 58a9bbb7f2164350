// Command luafront is the command-line front end for the Lua lexer and
// parser: the external collaborator that supplies read_source, report,
// and emit for the core library.
package main

import (
	"fmt"
	"os"

	"github.com/lua-front/compiler/cmd/luafront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseCommandSnapshots pins the exact shape of the AST dump for a
// handful of representative programs, the way the reference interpreter
// pins fixture output.
func TestParseCommandSnapshots(t *testing.T) {
	sources := map[string]string{
		"assign":      "x = 1 + 2 * 3",
		"if_else":     "if x then return 1 else return 2 end",
		"for_loop":    "for i = 1, 10 do print(i) end",
		"table":       "t = { 1, 2, x = 3, [k] = v }",
		"method_call": `obj:greet("hi")`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			out, err := runCommand(t, "parse", "-e", src)
			if err != nil {
				t.Fatalf("parse command failed: %v\noutput: %s", err, out)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

/*
File    : go-mix-core/parser/parser_snapshot_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramStringRoundTripSnapshot snapshots Program.String()'s pretty-
// printed form for a handful of programs spanning every expression kind,
// checking the round-trip testable property of spec §8: re-parsing the
// printed text reproduces a structurally equivalent program.
func TestProgramStringRoundTripSnapshot(t *testing.T) {
	sources := map[string]string{
		"def_with_lambda":  `sq: Float -> Float = \x: Float. (mul x x)`,
		"curried_lambda":   `k: Float -> Float -> Float = \x: Float. \y: Float. x`,
		"nested_apply":     `(add (mul 2.0 3.0) (sub 10.0 4.0))`,
		"string_literal":   `greeting: Str = "hello, world"`,
		"multi_arrow_type": `f: Float -> Str -> Any = x`,
		"zero_arg_apply":   `(add)`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			prog := mustParse(t, src)
			printed := prog.String()
			snaps.MatchSnapshot(t, printed)

			reparsed := mustParse(t, printed)
			if reparsed.String() != printed {
				t.Errorf("round-trip mismatch for %q:\nfirst : %s\nsecond: %s", name, printed, reparsed.String())
			}
		})
	}
}

/*
File    : go-mix-core/eval/evaluator_snapshot_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-mix-core/eval"
)

// TestEndToEndScenariosSnapshot snapshots the driver's last value for the
// six end-to-end scenarios of spec §8.
func TestEndToEndScenariosSnapshot(t *testing.T) {
	scenarios := map[string]string{
		"square": `
sq: Float -> Float = \x: Float. (mul x x)
(sq 5.0)
`,
		"curried_const": `
k: Float -> Float -> Float = \x: Float. \y: Float. x
(k 7.0 9.0)
`,
		"factorial": `
fact: Float -> Float = \n: Float. (if_zero n 1.0 (mul n (fact (sub n 1.0))))
(fact 5.0)
`,
		"sort_list": `
xs: Any = (list 3.0 1.0 2.0)
(list_get (sort xs) 0.0)
`,
		"foldr_sum": `(foldr add 0.0 (list 1.0 2.0 3.0 4.0))`,
		"map_increment": `
(map \x: Float. (add x 1.0) (list 10.0 20.0 30.0))
`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			ev := newEvaluator(&out)
			prog := mustParseProgram(t, src)

			_, last, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
			require.NoError(t, err)

			snaps.MatchSnapshot(t, last.String())
		})
	}
}

/*
File    : go-mix-core/value/thunk_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/parser"
)

// countingEvaluator forces an expression to a fixed Value, counting how
// many times Eval was actually invoked, to check the memoization
// testable property (spec §8): force() must invoke evaluation at most
// once.
type countingEvaluator struct {
	calls int
	value Value
	err   error
}

func (c *countingEvaluator) Eval(expr parser.Expr, env *Env) (Value, ResultOptions, error) {
	c.calls++
	return c.value, ResultOptions{}, c.err
}

func TestThunkForceMemoizes(t *testing.T) {
	env := NewEnv(nil)
	expr := parser.FloatLit{Value: 42}
	th := NewThunk(expr, env, lexer.Loc{})
	ev := &countingEvaluator{value: Float(42)}

	v1, _, err := th.Force(ev)
	require.NoError(t, err)
	v2, _, err := th.Force(ev)
	require.NoError(t, err)

	assert.Equal(t, 1, ev.calls)
	if diff := cmp.Diff(v1, v2); diff != "" {
		t.Fatalf("forced values differ across calls (-first +second):\n%s", diff)
	}
}

func TestThunkForceEmptyIsError(t *testing.T) {
	th := NewEmptyThunk(lexer.Loc{Row: 3, Col: 4, File: "x"})
	_, _, err := th.Force(&countingEvaluator{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forcing empty thunk")
}

func TestEnvLookupWalksParentChain(t *testing.T) {
	root := NewEnv(nil)
	root.Bind("x", NewEvaluatedThunk(Float(1)))
	child := NewEnv(root)
	child.Bind("y", NewEvaluatedThunk(Float(2)))

	_, ok := child.Lookup("x")
	assert.True(t, ok)
	_, ok = child.Lookup("z")
	assert.False(t, ok)
}

func TestEnvToVectorShowsUnevaluatedWithoutForcing(t *testing.T) {
	env := NewEnv(nil)
	env.Bind("x", NewThunk(parser.FloatLit{Value: 1}, env, lexer.Loc{}))
	entries := env.ToVector(nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "<thunk: unevaluated>", entries[0].Value)
}

/*
File    : go-mix-core/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-mix-core/builtin"
	"github.com/akashmaji946/go-mix-core/eval"
	"github.com/akashmaji946/go-mix-core/parser"
	"github.com/akashmaji946/go-mix-core/value"
)

func newEvaluator(out *bytes.Buffer) *eval.Evaluator {
	ev := eval.NewEvaluator()
	ev.Writer = out
	builtin.Register(ev)
	return ev
}

func mustParseProgram(t *testing.T, src string) *parser.Program {
	t.Helper()
	par, err := parser.NewParser(src, "<test>", parser.NewResolver())
	require.NoError(t, err)
	prog, err := par.Parse()
	require.NoError(t, err)
	return prog
}

func TestInterpretLiteralsAndArithmetic(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `(add 1.0 2.0)`)

	_, last, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)
	assert.Equal(t, value.Float(3), last)
}

func TestInterpretCurriedLambda(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `
f: Float -> Float -> Float = \x: Float. \y: Float. (add x y)
(f 1.0 2.0)
`)

	_, last, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)
	assert.Equal(t, value.Float(3), last)
}

func TestApplyWithNoArgsReturnsNativeUnapplied(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	// Applying with zero arguments is the only way the application
	// engine's step-3 "no args left to feed" branch returns a non-zero-
	// arity native as a function value without invoking it (spec §4.4
	// step 3): Apply.Callee must be a plain identifier, so natives with
	// fewer-than-arity args supplied in a single call site error out
	// (step 5) rather than partially applying.
	prog := mustParseProgram(t, `partial: Float -> Float -> Float = (add)`)

	env, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)

	th, ok := env.Lookup("partial")
	require.True(t, ok)
	v, _, err := th.Force(ev)
	require.NoError(t, err)
	_, isNative := v.(value.Native)
	assert.True(t, isNative, "applying a native with zero args should hand back the native itself unchanged")
}

func TestApplyingNativeWithTooFewArgsIsError(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `(add 1.0)`)

	_, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 2 argument")
}

func TestInterpretRecursiveDef(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `
fact: Float -> Float = \n: Float. (if_zero n 1.0 (mul n (fact (sub n 1.0))))
result: Float = (fact 5.0)
`)

	env, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)

	th, ok := env.Lookup("result")
	require.True(t, ok)
	v, _, err := th.Force(ev)
	require.NoError(t, err)
	assert.Equal(t, value.Float(120), v)
}

func TestInterpretPrintSetsSideEffects(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `(print "hello")`)

	_, last, opts, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)
	assert.Equal(t, value.Float(0), last)
	assert.True(t, opts.SideEffects)
	assert.Equal(t, "hello", out.String())
}

func TestInterpretListMapAndFoldr(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `
doubled: List = (map \x: Float. (mul x 2.0) (list 1.0 2.0 3.0))
total: Float = (foldr add 0.0 doubled)
`)

	env, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)

	th, ok := env.Lookup("total")
	require.True(t, ok)
	v, _, err := th.Force(ev)
	require.NoError(t, err)
	assert.Equal(t, value.Float(12), v)
}

func TestInterpretUndefinedIdentIsError(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `(nonexistent 1.0)`)

	_, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier")
}

func TestInterpretThunkMemoizesAcrossSharedBinding(t *testing.T) {
	var out bytes.Buffer
	ev := newEvaluator(&out)
	prog := mustParseProgram(t, `
counted: Float = (print "once")
a: Float = counted
b: Float = counted
`)

	env, _, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{})
	require.NoError(t, err)

	th, ok := env.Lookup("a")
	require.True(t, ok)
	_, _, err = th.Force(ev)
	require.NoError(t, err)
	thB, ok := env.Lookup("b")
	require.True(t, ok)
	_, _, err = thB.Force(ev)
	require.NoError(t, err)

	assert.Equal(t, "once", out.String(), "forcing a and b both refer to the same 'counted' thunk, which must print only once")
}

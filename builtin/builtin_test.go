/*
File    : go-mix-core/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin_test

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

func run(t *testing.T, src string) (value.Value, *bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	ev := eval.NewEvaluator()
	ev.Writer = &out
	builtin.Register(ev)

	par, err := parser.NewParser(src, "<test>", parser.NewResolver())
	require.NoError(t, err)
	prog, err := par.Parse()
	require.NoError(t, err)

	_, last, _, evalErr := ev.Interpret(prog, nil, eval.InterpretOptions{})
	return last, &out, evalErr
}

func TestBuiltinArithmeticAndCmp(t *testing.T) {
	v, _, err := run(t, `(cmp 3.0 5.0)`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(-1), v)

	v, _, err = run(t, `(sub 10.0 4.0)`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(6), v)
}

func TestBuiltinIfZeroForcesOnlySelectedBranch(t *testing.T) {
	v, out, err := run(t, `(if_zero 0.0 (print "then") (print "else"))`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(0), v)
	assert.Equal(t, "then", out.String())
}

func TestBuiltinParseFloatErrorsOnBadInput(t *testing.T) {
	_, _, err := run(t, `(parse_float "not-a-number")`)
	require.Error(t, err)
}

func TestBuiltinListRoundTrip(t *testing.T) {
	v, _, err := run(t, `(list_size (list 1.0 2.0 3.0))`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(3), v)

	v, _, err = run(t, `(list_get (list 1.0 2.0 3.0) 1.0)`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(2), v)
}

func TestBuiltinListGetOutOfRangeIsError(t *testing.T) {
	_, _, err := run(t, `(list_get (list 1.0) 5.0)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestBuiltinListRemoveMutatesAndReturnsRemoved(t *testing.T) {
	v, _, err := run(t, `
l: List = (list 1.0 2.0 3.0)
removed: Float = (list_remove l 0.0)
after: Float = (list_size l)
(cmp removed after)
`)
	require.NoError(t, err)
	// removed == 1.0, after == 2.0, cmp(1.0, 2.0) == -1
	assert.Equal(t, value.Float(-1), v)
}

func TestBuiltinSortAscending(t *testing.T) {
	v, _, err := run(t, `(list_get (sort (list 3.0 1.0 2.0)) 0.0)`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(1), v)
}

func TestBuiltinSortTypeError(t *testing.T) {
	_, _, err := run(t, `(sort (list "a" "b"))`)
	require.Error(t, err)
}

func TestBuiltinZipTruncatesToShortest(t *testing.T) {
	v, _, err := run(t, `(list_size (zip (list (list 1.0 2.0 3.0) (list 4.0 5.0))))`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(2), v)
}

func TestBuiltinSplitRejectsEmptyDelimiter(t *testing.T) {
	_, _, err := run(t, `(split "a,b" "")`)
	require.Error(t, err)
}

func TestBuiltinSplitByDelimiter(t *testing.T) {
	v, _, err := run(t, `(list_size (split "a,b,c" ","))`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(3), v)
}

func TestBuiltinLinesNormalizesCRLF(t *testing.T) {
	v, _, err := run(t, `(list_size (lines "a\r\nb\rc\nd"))`)
	require.NoError(t, err)
	assert.Equal(t, value.Float(4), v)
}

func TestBuiltinSlurpFileMissingIsError(t *testing.T) {
	_, _, err := run(t, `(slurp_file "/nonexistent/path/does/not/exist")`)
	require.Error(t, err)
}

/*
File    : go-mix-core/value/thunk.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"

	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/parser"
)

// Evaluator is the minimal capability a Thunk needs to force itself: the
// ability to evaluate an expression in an environment. The eval package's
// Evaluator satisfies this; Thunk depends only on this interface, not on
// the eval package, so value -> eval import cycle never arises (value is
// evaluated code's runtime data, eval is the machine that drives it).
// Grounded on original_source's Thunk::force calling eval_expr directly —
// here that call is made explicit via dependency injection instead of
// being an implicit same-translation-unit call.
type Evaluator interface {
	Eval(expr parser.Expr, env *Env) (Value, ResultOptions, error)
}

type thunkState int

const (
	stateEmpty thunkState = iota
	stateUnevaluated
	stateEvaluated
)

// Thunk is a call-by-need memoizing cell (spec §3). It is either
// unevaluated (holding an expression + its closing environment + an
// origin Loc for diagnostics), evaluated (holding a cached Value), or
// momentarily empty (a placeholder bound to a name before its body is
// attached, used to make recursive defs work — spec §3's Def invariant).
type Thunk struct {
	state  thunkState
	expr   parser.Expr
	env    *Env
	origin lexer.Loc
	value  Value
	opts   ResultOptions
}

// NewEmptyThunk creates a placeholder thunk with no expression and no
// cached value, to be bound to a name before its Def body is attached,
// enabling lazy self-reference (spec §3, §4.4).
func NewEmptyThunk(origin lexer.Loc) *Thunk {
	return &Thunk{state: stateEmpty, origin: origin}
}

// NewThunk creates an unevaluated thunk over expr closed over env.
func NewThunk(expr parser.Expr, env *Env, origin lexer.Loc) *Thunk {
	return &Thunk{state: stateUnevaluated, expr: expr, env: env, origin: origin}
}

// NewEvaluatedThunk creates a thunk that is already evaluated, used to
// wrap a concrete intermediate Value so it can be fed back into the
// application engine as an argument (spec §4.4 step 7) without forcing it
// again.
func NewEvaluatedThunk(v Value) *Thunk {
	return &Thunk{state: stateEvaluated, value: v}
}

// Set rebinds this thunk to a new expression+environment, borrowing expr
// (the caller retains ownership of its AST — used for file-loaded
// programs whose Program is retained for the process lifetime), and
// clears any cached value.
func (t *Thunk) Set(expr parser.Expr, env *Env, origin lexer.Loc) {
	t.state = stateUnevaluated
	t.expr = expr
	t.env = env
	t.origin = origin
	t.value = nil
}

// SetOwned behaves like Set; the distinction from Set is purely one of
// AST ownership at the call site (REPL entries own their parsed
// expression because the Program they came from is discarded after each
// line — spec §4.4's own_expr driver option). Thunk storage is identical
// either way: Go's garbage collector keeps expr alive as long as this
// Thunk references it, so there is no separate "owned" representation to
// maintain here.
func (t *Thunk) SetOwned(expr parser.Expr, env *Env, origin lexer.Loc) {
	t.Set(expr, env, origin)
}

// Force memoizes: on first call it evaluates the held expression via ev
// and caches the result (value and the ResultOptions observed while
// producing it); subsequent calls return the cached pair without
// re-evaluating (spec §3's "Once evaluated, a thunk's stored value never
// changes", and the memoization testable property of spec §8). Forcing a
// thunk whose Set was never called is a runtime error at its origin Loc.
func (t *Thunk) Force(ev Evaluator) (Value, ResultOptions, error) {
	switch t.state {
	case stateEvaluated:
		return t.value, t.opts, nil
	case stateEmpty:
		return nil, ResultOptions{}, fmt.Errorf("%s: runtime error: forcing empty thunk", t.origin)
	default:
		v, opts, err := ev.Eval(t.expr, t.env)
		if err != nil {
			return nil, ResultOptions{}, err
		}
		t.value = v
		t.opts = opts
		t.state = stateEvaluated
		return v, opts, nil
	}
}

// Describe renders this thunk for an Env dump (spec §4.3's to_vector). If
// the thunk already has a cached value, that value's printable form is
// always shown. Otherwise: if ev is non-nil (force requested), the thunk
// is forced and either its value or the forcing error text is shown (a
// bad binding must not abort the whole dump); if ev is nil, the literal
// "<thunk: unevaluated>" is shown without forcing anything.
func (t *Thunk) Describe(ev Evaluator) string {
	if t.state == stateEvaluated {
		return t.value.String()
	}
	if ev == nil {
		return "<thunk: unevaluated>"
	}
	v, _, err := t.Force(ev)
	if err != nil {
		return fmt.Sprintf("<error: %s>", err)
	}
	return v.String()
}

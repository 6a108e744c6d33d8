/*
File    : go-mix-core/eval/apply.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/value"
)

// apply is the curried application engine of spec §4.4: a small state
// machine over a stack of function Values ("frames") and a mutable list
// of argument thunks ("work"), with "idx" tracking the next unconsumed
// thunk. It has no teacher equivalent — the teacher's CallFunction in
// eval/evaluator.go is a single, strict-arity call — so this is grounded
// directly on the curry/feedback algorithm rather than adapted from
// existing code, with the re-entry callback idiom (how a builtin calls
// back into the engine) borrowed from std/list.go's Runtime.CallFunction
// pattern used by mapList/reduceList.
//
// It implements, in one place: curried user-lambda application (one
// parameter consumed per Closure), greedy n-ary native calls, variadic
// natives, partial application, and upward propagation of intermediate
// function-values as further callees.
func (ev *Evaluator) apply(fn value.Value, args []*value.Thunk, callSiteEnv *value.Env, loc lexer.Loc) (value.Value, value.ResultOptions, error) {
	frames := []value.Value{fn}
	work := args
	idx := 0
	var opts value.ResultOptions

	for {
		if len(frames) == 0 {
			return nil, opts, ev.errorf(loc, "internal error: empty application frame stack")
		}
		cur := frames[len(frames)-1]

		if idx >= len(work) {
			if nat, ok := cur.(value.Native); ok && (nat.Arity == 0 || nat.Arity == -1) {
				v, implOpts, err := nat.Impl(nil, callSiteEnv, ev)
				if err != nil {
					return nil, opts, err
				}
				opts = opts.Merge(implOpts)
				return v, opts, nil
			}
			return cur, opts, nil
		}

		var result value.Value
		switch c := cur.(type) {
		case value.Closure:
			arg := work[idx]
			idx++
			child := value.NewEnv(c.Env)
			child.Bind(c.Param, arg)
			v, evalOpts, err := ev.Eval(c.Body, child)
			if err != nil {
				return nil, opts, err
			}
			opts = opts.Merge(evalOpts)
			result = v
		case value.Native:
			var slice []*value.Thunk
			if c.Arity == -1 {
				slice = work[idx:]
				idx = len(work)
			} else {
				remaining := len(work) - idx
				if remaining < c.Arity {
					return nil, opts, ev.errorf(loc, fmt.Sprintf("native function %s expects %d argument(s), found %d", c.Name, c.Arity, remaining))
				}
				slice = work[idx : idx+c.Arity]
				idx += c.Arity
			}
			v, implOpts, err := c.Impl(slice, callSiteEnv, ev)
			if err != nil {
				return nil, opts, err
			}
			opts = opts.Merge(implOpts)
			result = v
		default:
			return nil, opts, ev.errorf(loc, "trying to apply non-function value")
		}

		switch result.(type) {
		case value.Closure, value.Native:
			frames[len(frames)-1] = result
			continue
		default:
			frames = frames[:len(frames)-1]
			if len(frames) == 0 {
				if idx == len(work) {
					return result, opts, nil
				}
				return nil, opts, ev.errorf(loc, "too many arguments applied to non-function value")
			}
			th := value.NewEvaluatedThunk(result)
			rest := append([]*value.Thunk{th}, work[idx:]...)
			work = append(work[:idx:idx], rest...)
			continue
		}
	}
}

// Apply exposes the application engine to callers outside this package —
// the builtin registry's map/foldr re-entering evaluation to drive a
// user-supplied callable element-wise (spec §4.5). It satisfies
// value.Caller, with no source Loc of its own to report (re-entrant calls
// from a builtin have no syntactic call site); errors from this path
// carry a zero Loc.
func (ev *Evaluator) Apply(fn value.Value, args []*value.Thunk, callSiteEnv *value.Env) (value.Value, value.ResultOptions, error) {
	return ev.apply(fn, args, callSiteEnv, lexer.Loc{})
}

// Out exposes the Evaluator's output writer to built-ins (print, spec
// §4.5) without handing them the whole Evaluator.
func (ev *Evaluator) Out() io.Writer {
	return ev.Writer
}

var _ value.Caller = (*Evaluator)(nil)

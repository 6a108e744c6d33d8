/*
File    : go-mix-core/value/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "io"

// ResultOptions carries side-channel information produced by evaluating an
// expression, currently just whether it had observable side effects
// (spec §3). Merge implements the interpolation rule over a sequence of
// results: boolean OR.
type ResultOptions struct {
	SideEffects bool
}

// Merge ORs o.SideEffects with other's and returns the combined options.
func (o ResultOptions) Merge(other ResultOptions) ResultOptions {
	return ResultOptions{SideEffects: o.SideEffects || other.SideEffects}
}

// Caller is the capability a built-in needs to act like part of the
// evaluator: force a thunk (Eval, inherited from Evaluator) and re-enter
// the curried application engine to call a function value with its own
// argument thunks (Apply), the way map/foldr drive a user-supplied
// callable element-wise (spec §4.5). Grounded on std/list.go's narrow
// Runtime interface (CallFunction) that the teacher's builtins receive
// instead of the whole Evaluator.
type Caller interface {
	Evaluator
	Apply(fn Value, args []*Thunk, callEnv *Env) (Value, ResultOptions, error)
	Out() io.Writer
}

// NativeImpl is a built-in function body. It receives its argument thunks
// unforced — forcing is the impl's own responsibility, which is what lets
// if_zero and similar control built-ins force only the branch they select
// (spec §3, §4.5) — the environment at the application's call site, and a
// Caller to force arguments or re-enter the application engine.
type NativeImpl func(args []*Thunk, callEnv *Env, rt Caller) (Value, ResultOptions, error)

// Native is a built-in function value. Arity == -1 means variadic
// (consumes all remaining arguments at the current application site);
// Arity == 0 means niladic (invocable with no arguments at all) (spec §3).
type Native struct {
	Arity int
	Name  string
	Impl  NativeImpl
}

func (Native) Kind() Kind       { return KindNative }
func (n Native) String() string { return "<native " + n.Name + ">" }

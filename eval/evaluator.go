/*
File    : go-mix-core/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the thunk/environment machine (spec §4.4): the five-case
// expression evaluator, the curried application engine, and the top-level
// interpret driver that the repl and cmd/gomix packages call into.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/logx"
	"github.com/akashmaji946/go-mix-core/parser"
	"github.com/akashmaji946/go-mix-core/value"
)

// Evaluator holds the state shared by every Eval call: the built-in
// registry and the writer builtins like print use. It keeps the teacher's
// eval.Evaluator field shape (Builtins, Writer) from eval/evaluator.go,
// dropping Par/Scp/Types/Reader — this language has no structs, and Env is
// threaded explicitly through Interpret rather than held as mutable
// evaluator state (spec §4.4's driver contract).
type Evaluator struct {
	Builtins map[string]*value.Native
	Writer   io.Writer
	Logger   *logx.Logger
}

// NewEvaluator builds an Evaluator writing to os.Stdout with a non-color
// logger; callers (repl, cmd/gomix) typically replace Writer/Logger once
// terminal capabilities are known.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Builtins: make(map[string]*value.Native),
		Writer:   os.Stdout,
		Logger:   logx.NewLogger(os.Stdout, false),
	}
}

// Eval dispatches on expr's Kind, implementing the five cases of spec
// §4.4. It satisfies value.Evaluator, so a Thunk can Force itself by
// calling back into this method without the value package importing eval.
func (ev *Evaluator) Eval(expr parser.Expr, env *value.Env) (value.Value, value.ResultOptions, error) {
	switch expr.Kind() {
	case parser.KindIdent:
		return ev.evalIdent(expr.(parser.Ident), env)
	case parser.KindStrLit:
		lit := expr.(parser.StrLit)
		return value.Str(lit.Value), value.ResultOptions{}, nil
	case parser.KindFloatLit:
		lit := expr.(parser.FloatLit)
		return value.Float(lit.Value), value.ResultOptions{}, nil
	case parser.KindLambda:
		return ev.evalLambda(expr.(parser.Lambda), env)
	case parser.KindApply:
		return ev.evalApply(expr.(parser.Apply), env)
	default:
		return nil, value.ResultOptions{}, ev.errorf(expr.Loc(), "unrecognized expression")
	}
}

func (ev *Evaluator) evalIdent(id parser.Ident, env *value.Env) (value.Value, value.ResultOptions, error) {
	th, ok := env.Lookup(id.Name)
	if !ok {
		return nil, value.ResultOptions{}, ev.errorf(id.Loc_, "undefined identifier '", id.Name, "'")
	}
	return th.Force(ev)
}

func (ev *Evaluator) evalLambda(l parser.Lambda, env *value.Env) (value.Value, value.ResultOptions, error) {
	return value.Closure{Param: l.Param, Body: l.Body, Env: env}, value.ResultOptions{}, nil
}

// evalApply implements spec §4.4's Apply case: look up and force the
// callee, build a fresh unevaluated thunk per argument (arguments are
// never evaluated here), then hand off to the application engine.
func (ev *Evaluator) evalApply(a parser.Apply, env *value.Env) (value.Value, value.ResultOptions, error) {
	calleeThunk, ok := env.Lookup(a.Callee.Name)
	if !ok {
		return nil, value.ResultOptions{}, ev.errorf(a.Callee.Loc_, "undefined identifier '", a.Callee.Name, "'")
	}
	fnValue, fnOpts, err := calleeThunk.Force(ev)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}

	argThunks := make([]*value.Thunk, len(a.Args))
	for i, argExpr := range a.Args {
		argThunks[i] = value.NewThunk(argExpr, env, argExpr.Loc())
	}

	result, applyOpts, err := ev.apply(fnValue, argThunks, env, a.Loc_)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	return result, fnOpts.Merge(applyOpts), nil
}

// errorf builds a runtime *logx.InterpError the way the teacher's
// CreateError concatenates its message parts.
func (ev *Evaluator) errorf(loc lexer.Loc, parts ...any) error {
	return ev.Logger.Error(logx.KindRuntime, loc, parts...)
}

var _ value.Evaluator = (*Evaluator)(nil)

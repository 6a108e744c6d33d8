/*
File    : go-mix-core/eval/interpret.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix-core/parser"
	"github.com/akashmaji946/go-mix-core/value"
)

// InterpretOptions controls the top-level driver (spec §4.4). OwnExpr
// matters for REPL input: a REPL line's Program is discarded right after
// interpretation, so any Def thunk created from it must take ownership of
// its body AST to remain valid when forced later; a file-loaded Program is
// retained for the process lifetime and so may be borrowed from instead.
type InterpretOptions struct {
	OwnExpr bool
}

// Interpret runs every node of prog against env in source order, the way
// the teacher's executeFileWithRecovery (file mode, fatal on error) and
// executeWithRecovery (REPL mode, recoverable) both ultimately parse then
// evaluate — generalized here into one function that returns its error
// instead of choosing exit-vs-recover itself; that choice belongs to the
// caller (cmd/gomix for file mode, repl for interactive mode).
//
// If env is nil, a fresh root environment is constructed and seeded with
// the built-in registry before any node runs.
func (ev *Evaluator) Interpret(prog *parser.Program, env *value.Env, opts InterpretOptions) (*value.Env, value.Value, value.ResultOptions, error) {
	if env == nil {
		env = ev.NewRootEnv()
	}

	var lastValue value.Value = value.Str("")
	var aggregated value.ResultOptions

	for _, node := range prog.Nodes {
		if node.IsDef() {
			def := node.Def
			placeholder := value.NewEmptyThunk(def.Loc())
			env.Bind(def.Name, placeholder)
			if opts.OwnExpr {
				placeholder.SetOwned(def.Body, env, def.Body.Loc())
			} else {
				placeholder.Set(def.Body, env, def.Body.Loc())
			}
			lastValue = value.Str(def.Name)
			continue
		}

		v, opts2, err := ev.Eval(node.Expr, env)
		if err != nil {
			return env, nil, aggregated, err
		}
		aggregated = aggregated.Merge(opts2)
		lastValue = v
	}

	return env, lastValue, aggregated, nil
}

// registerBuiltins seeds env with one pre-cached thunk per built-in native
// (spec §4.5: "the registry seeds the root environment with one thunk per
// built-in, each pre-cached to a NativeV").
func (ev *Evaluator) registerBuiltins(env *value.Env) {
	for name, native := range ev.Builtins {
		env.Bind(name, value.NewEvaluatedThunk(*native))
	}
}

// NewRootEnv builds a fresh root environment seeded with the built-in
// registry, with no parent — one per REPL session and one per `server`
// TCP connection (SPEC_FULL.md §4), so that `:reset` or a new client never
// shares bindings with any other live environment.
func (ev *Evaluator) NewRootEnv() *value.Env {
	env := value.NewEnv(nil)
	ev.registerBuiltins(env)
	return env
}

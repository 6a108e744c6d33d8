/*
File    : go-mix-core/builtin/register.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin is the built-in registry of spec §4.5, replacing and
// generalizing the teacher's std package. It is grounded on
// std/builtins.go's Builtin{Name, Callback} idiom, but registers into a
// caller-supplied Evaluator via an explicit Register function rather than
// a package-level init() populating a shared global slice — arity and
// registration must be constructed fresh per interpreter instance, since
// more than one independent root environment can exist (the REPL's
// `:reset` command builds a new one).
package builtin

import (
	"github.com/akashmaji946/go-mix-core/eval"
	"github.com/akashmaji946/go-mix-core/value"
)

// natives is the name->arity->impl table assembled from every file in
// this package. Package-scoped but read-only after init — Register copies
// entries out of it into the caller's Evaluator rather than sharing it, so
// distinct Evaluators never alias the same *value.Native.
var natives = map[string]value.Native{}

func add(name string, arity int, impl value.NativeImpl) {
	natives[name] = value.Native{Name: name, Arity: arity, Impl: impl}
}

func init() {
	registerArithmetic()
	registerControl()
	registerList()
	registerIO()
}

// Register installs one *value.Native per built-in into ev.Builtins
// (spec §4.5's registry). Call this once per Evaluator before the first
// Interpret with a nil environment, so Interpret's "install built-ins on
// a fresh root environment" step has something to seed from.
func Register(ev *eval.Evaluator) {
	for name, n := range natives {
		native := n
		ev.Builtins[name] = &native
	}
}

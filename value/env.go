/*
File    : go-mix-core/value/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// Env is a lexically chained name->thunk map (spec §3). Lookup walks the
// local table first, then the parent chain; multiple children may share a
// parent, which is how a ClosureV's captured environment keeps seeing
// later sibling definitions in an enclosing scope without ever copying
// that scope (a deliberate divergence from the teacher's Scope.Copy, which
// snapshots variables for each closure — see DESIGN.md / SPEC_FULL.md
// §1.3).
type Env struct {
	Table  map[string]*Thunk
	Parent *Env
}

// NewEnv builds an empty Env with the given parent (nil for a root
// environment).
func NewEnv(parent *Env) *Env {
	return &Env{Table: make(map[string]*Thunk), Parent: parent}
}

// Lookup searches the local table, then recurses into Parent. It returns
// (nil, false) if name is unbound anywhere in the chain.
func (e *Env) Lookup(name string) (*Thunk, bool) {
	for env := e; env != nil; env = env.Parent {
		if th, ok := env.Table[name]; ok {
			return th, true
		}
	}
	return nil, false
}

// Bind inserts or overwrites name in the local table only — it never
// walks into Parent, matching the teacher's Bind semantics
// (scope/scope.go).
func (e *Env) Bind(name string, th *Thunk) {
	e.Table[name] = th
}

// EnvEntry is one row of an Env dump produced by ToVector.
type EnvEntry struct {
	Name  string
	Value string
}

// ToVector snapshots bindings across the chain, local first then parent,
// for the REPL's `:env` command and debug dumps (spec §4.3). Pass a
// non-nil ev to force each unevaluated thunk (errors are swallowed into
// the displayed text so one bad binding cannot abort the dump); pass nil
// to show "<thunk: unevaluated>" for anything not already cached.
func (e *Env) ToVector(ev Evaluator) []EnvEntry {
	entries := make([]EnvEntry, 0)
	seen := make(map[string]struct{})
	for env := e; env != nil; env = env.Parent {
		for name, th := range env.Table {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			entries = append(entries, EnvEntry{Name: name, Value: th.Describe(ev)})
		}
	}
	return entries
}

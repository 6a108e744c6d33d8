/*
File    : go-mix-core/parser/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "path/filepath"

// Resolver tracks which source files have already been pulled in via
// `use`, so that the same file reached through two different relative
// paths is only included once and a cyclic chain of `use`s terminates
// (spec §4.2, §8, §9 — "prefer an explicit resolver object threaded
// through the parser over a hidden global"). A Resolver is created by the
// caller (the REPL keeps one for its whole session, across entries and
// `:load`s) and threaded explicitly through every recursive `use`
// resolution; it is never a package-level variable.
type Resolver struct {
	loaded map[string]struct{}
}

// NewResolver builds an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{loaded: make(map[string]struct{})}
}

// MarkLoaded resolves path to its absolute form and records it as loaded.
// Returns true if this is the first time that absolute path has been seen.
func (r *Resolver) MarkLoaded(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, ok := r.loaded[abs]; ok {
		return false
	}
	r.loaded[abs] = struct{}{}
	return true
}

/*
File    : go-mix-core/value/closure.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "github.com/akashmaji946/go-mix-core/parser"

// Closure is a user lambda bound to the environment it was evaluated in
// (spec §3: "captures the environment at the point of the lambda's
// evaluation, not at its call site"). Multi-parameter functions are
// nested Closures, one per parameter, each capturing the outer one's
// child environment once applied.
type Closure struct {
	Param string
	Body  parser.Expr
	Env   *Env
}

func (Closure) Kind() Kind       { return KindClosure }
func (c Closure) String() string { return "<closure \\" + c.Param + ">" }

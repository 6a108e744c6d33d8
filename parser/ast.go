/*
File    : go-mix-core/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-mix-core/lexer"
)

// Expr is the closed set of expression AST nodes: identifier, string
// literal, float literal, lambda, and application. There are exactly five
// variants (spec §3), so the evaluator switches on ExprKind rather than
// using a visitor — "tagged sum types ... no class hierarchy or virtual
// dispatch is needed" (spec design note §9).
type Expr interface {
	exprNode()
	Loc() lexer.Loc
	String() string
	Kind() ExprKind
}

// ExprKind tags a concrete Expr implementation for switch-based dispatch.
type ExprKind int

const (
	KindIdent ExprKind = iota
	KindStrLit
	KindFloatLit
	KindLambda
	KindApply
)

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Loc_ lexer.Loc
}

func (Ident) exprNode()        {}
func (i Ident) Loc() lexer.Loc { return i.Loc_ }
func (i Ident) String() string { return i.Name }
func (Ident) Kind() ExprKind   { return KindIdent }

// StrLit is a string literal with escapes already resolved (spec §4.2).
type StrLit struct {
	Value string
	Loc_  lexer.Loc
}

func (StrLit) exprNode()        {}
func (s StrLit) Loc() lexer.Loc { return s.Loc_ }
func (s StrLit) String() string { return fmt.Sprintf("%q", s.Value) }
func (StrLit) Kind() ExprKind   { return KindStrLit }

// FloatLit is a floating point literal.
type FloatLit struct {
	Value float64
	Loc_  lexer.Loc
}

func (FloatLit) exprNode()        {}
func (f FloatLit) Loc() lexer.Loc { return f.Loc_ }
func (f FloatLit) String() string {
	s := fmt.Sprintf("%g", f.Value)
	return s
}
func (FloatLit) Kind() ExprKind { return KindFloatLit }

// Lambda is a single-parameter abstraction: `\param: type. body`.
// Multi-parameter functions are encoded by the source program as nested
// lambdas, not by this node carrying a parameter list (spec §3).
type Lambda struct {
	Param     string
	ParamType Type
	Body      Expr
	Loc_      lexer.Loc
}

func (Lambda) exprNode()        {}
func (l Lambda) Loc() lexer.Loc { return l.Loc_ }
func (l Lambda) String() string {
	return fmt.Sprintf(`\%s: %s. %s`, l.Param, l.ParamType.String(), l.Body.String())
}
func (Lambda) Kind() ExprKind { return KindLambda }

// Apply is a prefix-style n-ary application `(callee arg1 arg2 ...)`. The
// callee is always a syntactic identifier, never an arbitrary expression —
// kept as an unresolved Open Question per spec §9; see SPEC_FULL.md §6.
type Apply struct {
	Callee Ident
	Args   []Expr
	Loc_   lexer.Loc
}

func (Apply) exprNode()        {}
func (a Apply) Loc() lexer.Loc { return a.Loc_ }
func (a Apply) String() string {
	parts := make([]string, 0, len(a.Args)+1)
	parts = append(parts, a.Callee.Name)
	for _, arg := range a.Args {
		parts = append(parts, arg.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (Apply) Kind() ExprKind { return KindApply }

// Def is a top-level named definition: `name : type = body`.
type Def struct {
	Name         string
	DeclaredType Type
	Body         Expr
	Loc_         lexer.Loc
}

func (d Def) Loc() lexer.Loc { return d.Loc_ }
func (d Def) String() string {
	return fmt.Sprintf("%s: %s = %s", d.Name, d.DeclaredType.String(), d.Body.String())
}

// Node is a top-level program element: either a bare Expr or a Def.
// exactly one of Expr/Def is non-nil.
type Node struct {
	Expr Expr
	Def  *Def
}

// IsDef reports whether this Node is a definition rather than a bare
// top-level expression.
func (n Node) IsDef() bool { return n.Def != nil }

func (n Node) String() string {
	if n.IsDef() {
		return n.Def.String()
	}
	return n.Expr.String()
}

// Program is an ordered sequence of top-level nodes, the parser's output
// (spec §3). String pretty-prints each node on its own line, used to check
// the round-trip testable property (spec §8): parsing this printed text
// again reproduces structurally equivalent nodes.
type Program struct {
	Nodes []Node
}

func (p Program) String() string {
	lines := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		lines[i] = n.String()
	}
	return strings.Join(lines, "\n")
}

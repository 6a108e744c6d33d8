/*
File    : go-mix-core/logx/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package logx is the interpreter's diagnostics surface: the error kinds
// and location-tagged error type of spec §7, and a Logger that renders
// them with github.com/fatih/color the way the teacher's repl/repl.go and
// main/main.go do.
package logx

import (
	"fmt"

	"github.com/akashmaji946/go-mix-core/lexer"
)

// ErrorKind categorizes a diagnostic per spec §7.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindLex
	KindParse
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IO error"
	case KindLex:
		return "syntax error"
	case KindParse:
		return "syntax error"
	case KindRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// InterpError is the interpreter's single error type, carrying a Kind, the
// smallest enclosing Loc (spec §7), and a message. It implements error so
// it composes with ordinary Go error handling.
type InterpError struct {
	Kind ErrorKind
	Loc  lexer.Loc
	Msg  string
}

func (e *InterpError) Error() string {
	if e.Loc.File == "" && e.Loc.Row == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// NewError builds an InterpError, formatting parts the way
// eval/evaluator.go's CreateError composes its message: fmt.Sprint over
// the variadic parts, concatenated with no separator.
func NewError(kind ErrorKind, loc lexer.Loc, parts ...any) *InterpError {
	return &InterpError{Kind: kind, Loc: loc, Msg: fmt.Sprint(parts...)}
}

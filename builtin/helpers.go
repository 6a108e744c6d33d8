/*
File    : go-mix-core/builtin/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"fmt"

	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/logx"
	"github.com/akashmaji946/go-mix-core/value"
)

// typeError renders the standard "name : signature expects ... found ..."
// shape required by every built-in's type check (spec §4.5's closing
// paragraph). Built-ins have no syntactic call-site Loc of their own to
// report, so these errors carry a zero lexer.Loc.
func typeError(name, signature string, got value.Value) error {
	return logx.NewError(logx.KindRuntime, lexer.Loc{}, fmt.Sprintf("%s : %s expects matching argument types, found %s", name, signature, got.String()))
}

func runtimeError(parts ...any) error {
	return logx.NewError(logx.KindRuntime, lexer.Loc{}, parts...)
}

func forceFloat(th *value.Thunk, rt value.Caller, name, signature string) (value.Float, error) {
	v, _, err := th.Force(rt)
	if err != nil {
		return 0, err
	}
	f, ok := v.(value.Float)
	if !ok {
		return 0, typeError(name, signature, v)
	}
	return f, nil
}

func forceStr(th *value.Thunk, rt value.Caller, name, signature string) (value.Str, error) {
	v, _, err := th.Force(rt)
	if err != nil {
		return "", err
	}
	s, ok := v.(value.Str)
	if !ok {
		return "", typeError(name, signature, v)
	}
	return s, nil
}

func forceList(th *value.Thunk, rt value.Caller, name, signature string) (*value.List, error) {
	v, _, err := th.Force(rt)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, typeError(name, signature, v)
	}
	return l, nil
}

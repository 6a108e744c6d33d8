/*
File    : go-mix-core/builtin/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"fmt"
	"math"
	"strconv"

	"github.com/akashmaji946/go-mix-core/value"
)

// registerControl installs if_zero, parse_float, and print (spec §4.5).
func registerControl() {
	add("if_zero", 3, ifZero)
	add("parse_float", 1, parseFloat)
	add("print", -1, printAll)
}

// ifZero forces only the branch it selects: the condition is always
// forced, but whichever of the second/third argument is not chosen is
// left untouched (spec §4.5).
func ifZero(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "Float -> Any -> Any -> Any"
	cond, err := forceFloat(args[0], rt, "if_zero", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	branch := args[2]
	if float64(cond) == 0 {
		branch = args[1]
	}
	v, opts, err := branch.Force(rt)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	return v, opts, nil
}

func parseFloat(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "Str -> Float"
	s, err := forceStr(args[0], rt, "parse_float", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	f, parseErr := strconv.ParseFloat(string(s), 64)
	if parseErr != nil || math.IsInf(f, 0) {
		return nil, value.ResultOptions{}, runtimeError("parse_float : ", signature, " cannot parse '", string(s), "' as a Float")
	}
	return value.Float(f), value.ResultOptions{}, nil
}

// printAll prints each forced argument's printable form with no
// separator, returns 0.0, and reports a side effect (spec §4.5).
func printAll(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	for _, th := range args {
		v, _, err := th.Force(rt)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		fmt.Fprint(rt.Out(), v.String())
	}
	return value.Float(0), value.ResultOptions{SideEffects: true}, nil
}

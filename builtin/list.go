/*
File    : go-mix-core/builtin/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"math"
	"sort"

	"github.com/akashmaji946/go-mix-core/value"
)

// registerList installs the list primitives of spec §4.5. map/foldr are
// grounded directly on std/list.go's mapList/reduceList, reworked to drive
// the curried application engine (rt.Apply) instead of a single eager
// Runtime.CallFunction call.
func registerList() {
	add("list", -1, listCtor)
	add("list_size", 1, listSize)
	add("list_get", 2, listGet)
	add("list_remove", 2, listRemove)
	add("list_append", 2, listAppend)
	add("map", 2, listMap)
	add("foldr", 3, listFoldr)
	add("sort", 1, listSort)
	add("zip", 1, listZip)
	add("transpose", 1, listTranspose)
}

func listCtor(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	elems := make([]value.Value, len(args))
	for i, th := range args {
		v, _, err := th.Force(rt)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		elems[i] = v
	}
	return value.NewList(elems), value.ResultOptions{}, nil
}

func listSize(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	l, err := forceList(args[0], rt, "list_size", "List -> Float")
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	return value.Float(len(l.Elements)), value.ResultOptions{}, nil
}

func listGet(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "List -> Float -> Any"
	l, err := forceList(args[0], rt, "list_get", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	idxF, err := forceFloat(args[1], rt, "list_get", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	i := int(idxF)
	if i < 0 || i >= len(l.Elements) {
		return nil, value.ResultOptions{}, runtimeError("list_get : ", signature, " index ", i, " out of range for list of size ", len(l.Elements))
	}
	return l.Elements[i], value.ResultOptions{}, nil
}

func listRemove(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "List -> Float -> Any"
	l, err := forceList(args[0], rt, "list_remove", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	idxF, err := forceFloat(args[1], rt, "list_remove", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	i := int(idxF)
	if i < 0 || i >= len(l.Elements) {
		return nil, value.ResultOptions{}, runtimeError("list_remove : ", signature, " index ", i, " out of range for list of size ", len(l.Elements))
	}
	removed := l.Elements[i]
	l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
	return removed, value.ResultOptions{}, nil
}

func listAppend(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	l, err := forceList(args[0], rt, "list_append", "List -> Any -> List")
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	v, _, err := args[1].Force(rt)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	l.Elements = append(l.Elements, v)
	return l, value.ResultOptions{}, nil
}

func listMap(args []*value.Thunk, callEnv *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "(A -> B) -> List -> List"
	fn, _, err := args[0].Force(rt)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	l, err := forceList(args[1], rt, "map", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}

	var opts value.ResultOptions
	out := make([]value.Value, len(l.Elements))
	for i, elem := range l.Elements {
		res, elemOpts, err := rt.Apply(fn, []*value.Thunk{value.NewEvaluatedThunk(elem)}, callEnv)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		opts = opts.Merge(elemOpts)
		out[i] = res
	}
	return value.NewList(out), opts, nil
}

func listFoldr(args []*value.Thunk, callEnv *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "(A -> B -> B) -> B -> List -> B"
	fn, _, err := args[0].Force(rt)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	seed, _, err := args[1].Force(rt)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	l, err := forceList(args[2], rt, "foldr", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}

	var opts value.ResultOptions
	acc := seed
	for i := len(l.Elements) - 1; i >= 0; i-- {
		res, stepOpts, err := rt.Apply(fn, []*value.Thunk{
			value.NewEvaluatedThunk(l.Elements[i]),
			value.NewEvaluatedThunk(acc),
		}, callEnv)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		opts = opts.Merge(stepOpts)
		acc = res
	}
	return acc, opts, nil
}

func listSort(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "List<Float> -> List<Float>"
	l, err := forceList(args[0], rt, "sort", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	floats := make([]float64, len(l.Elements))
	for i, elem := range l.Elements {
		f, ok := elem.(value.Float)
		if !ok {
			return nil, value.ResultOptions{}, typeError("sort", signature, elem)
		}
		floats[i] = float64(f)
	}
	sort.Float64s(floats)
	out := make([]value.Value, len(floats))
	for i, f := range floats {
		out[i] = value.Float(f)
	}
	return value.NewList(out), value.ResultOptions{}, nil
}

func listZip(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "List<List> -> List<List>"
	outer, err := forceList(args[0], rt, "zip", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	inner := make([][]value.Value, len(outer.Elements))
	minLen := math.MaxInt
	for i, elem := range outer.Elements {
		l, ok := elem.(*value.List)
		if !ok {
			return nil, value.ResultOptions{}, typeError("zip", signature, elem)
		}
		inner[i] = l.Elements
		if len(l.Elements) < minLen {
			minLen = len(l.Elements)
		}
	}
	if len(outer.Elements) == 0 {
		minLen = 0
	}
	return value.NewList(transpose(inner, minLen)), value.ResultOptions{}, nil
}

func listTranspose(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "List<List> -> List<List>"
	outer, err := forceList(args[0], rt, "transpose", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	inner := make([][]value.Value, len(outer.Elements))
	minLen := math.MaxInt
	for i, elem := range outer.Elements {
		l, ok := elem.(*value.List)
		if !ok {
			return nil, value.ResultOptions{}, typeError("transpose", signature, elem)
		}
		inner[i] = l.Elements
		if len(l.Elements) < minLen {
			minLen = len(l.Elements)
		}
	}
	if len(outer.Elements) == 0 {
		minLen = 0
	}
	return value.NewList(transpose(inner, minLen)), value.ResultOptions{}, nil
}

// transpose rebuilds rows-of-columns into columns-of-rows, truncating to
// minLen (the shortest inner list) the way zip and transpose both do
// (spec §4.5).
func transpose(rows [][]value.Value, minLen int) []value.Value {
	out := make([]value.Value, minLen)
	for col := 0; col < minLen; col++ {
		row := make([]value.Value, len(rows))
		for r, cols := range rows {
			row[r] = cols[col]
		}
		out[col] = value.NewList(row)
	}
	return out
}

/*
File    : go-mix-core/builtin/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"os"
	"strings"

	"github.com/akashmaji946/go-mix-core/value"
)

// registerIO installs slurp_file, lines, and split (spec §4.5).
func registerIO() {
	add("slurp_file", 1, slurpFile)
	add("lines", 1, linesOf)
	add("split", 2, splitOn)
}

func slurpFile(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "Str -> Str"
	path, err := forceStr(args[0], rt, "slurp_file", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	data, ioErr := os.ReadFile(string(path))
	if ioErr != nil {
		return nil, value.ResultOptions{}, runtimeError("slurp_file : ", signature, " could not read '", string(path), "': ", ioErr.Error())
	}
	return value.Str(data), value.ResultOptions{}, nil
}

// linesOf normalizes \r\n and lone \r to \n, then splits on \n (spec
// §4.5).
func linesOf(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	s, err := forceStr(args[0], rt, "lines", "Str -> List<Str>")
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	normalized := strings.ReplaceAll(string(s), "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	parts := strings.Split(normalized, "\n")
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str(p)
	}
	return value.NewList(elems), value.ResultOptions{}, nil
}

func splitOn(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
	const signature = "Str -> Str -> List<Str>"
	s, err := forceStr(args[0], rt, "split", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	delim, err := forceStr(args[1], rt, "split", signature)
	if err != nil {
		return nil, value.ResultOptions{}, err
	}
	if delim == "" {
		return nil, value.ResultOptions{}, runtimeError("split : ", signature, " delimiter must not be empty")
	}
	parts := strings.Split(string(s), string(delim))
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str(p)
	}
	return value.NewList(elems), value.ResultOptions{}, nil
}

/*
File    : go-mix-core/builtin/arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import "github.com/akashmaji946/go-mix-core/value"

// registerArithmetic installs add/sub/mul/cmp, all Float -> Float -> Float
// (cmp returns -1, 0, or 1) per spec §4.5.
func registerArithmetic() {
	add("add", 2, binaryFloat("add", func(a, b float64) float64 { return a + b }))
	add("sub", 2, binaryFloat("sub", func(a, b float64) float64 { return a - b }))
	add("mul", 2, binaryFloat("mul", func(a, b float64) float64 { return a * b }))
	add("cmp", 2, binaryFloat("cmp", func(a, b float64) float64 {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}))
}

func binaryFloat(name string, op func(a, b float64) float64) value.NativeImpl {
	const signature = "Float -> Float -> Float"
	return func(args []*value.Thunk, _ *value.Env, rt value.Caller) (value.Value, value.ResultOptions, error) {
		a, err := forceFloat(args[0], rt, name, signature)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		b, err := forceFloat(args[1], rt, name, signature)
		if err != nil {
			return nil, value.ResultOptions{}, err
		}
		return value.Float(op(float64(a), float64(b))), value.ResultOptions{}, nil
	}
}

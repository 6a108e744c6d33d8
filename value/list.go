/*
File    : go-mix-core/value/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strings"

// List is the language's one interior-mutable value: append and in-place
// removal are exposed to the language via list_append/list_remove and are
// observable (spec §3, §9 "Mutable list semantics"). It is always passed
// by reference (*List).
type List struct {
	Elements []Value
}

// NewList builds a List from elements, copying the slice header but not
// the elements themselves.
func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (*List) Kind() Kind { return KindList }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

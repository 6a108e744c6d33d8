/*
File    : go-mix-core/parser/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser


// PrimitiveKind enumerates the built-in primitive type names plus the
// catch-all for any other identifier used as a type annotation.
type PrimitiveKind int

const (
	KindFloat PrimitiveKind = iota
	KindStr
	KindAny
	KindCustom
)

// Primitive is a leaf of a declared type: one of Float, Str, Any, or a
// named custom type. Custom is only meaningful when Kind == KindCustom.
type Primitive struct {
	Kind   PrimitiveKind
	Custom string
}

func (p Primitive) String() string {
	switch p.Kind {
	case KindFloat:
		return "Float"
	case KindStr:
		return "Str"
	case KindAny:
		return "Any"
	default:
		return p.Custom
	}
}

// primitiveFromIdent classifies an identifier used in type position. It
// never fails: any identifier other than the three reserved names becomes
// a KindCustom primitive, per spec §4.2.
func primitiveFromIdent(name string) Primitive {
	switch name {
	case "Float":
		return Primitive{Kind: KindFloat}
	case "Str":
		return Primitive{Kind: KindStr}
	case "Any":
		return Primitive{Kind: KindAny}
	default:
		return Primitive{Kind: KindCustom, Custom: name}
	}
}

// Type is either a bare Primitive or a right-associative Compound arrow
// type (Left -> Right). Declared types are parsed but never enforced (no
// static type checker exists per spec §1 Non-goals); they exist purely for
// documentation and for the type-parse-associativity testable property
// (spec §8).
type Type interface {
	typeNode()
	String() string
}

func (Primitive) typeNode() {}

// Compound represents `Left -> Right`, where Right may itself be a
// Compound, making `->` right-associative.
type Compound struct {
	Left  Primitive
	Right Type
}

func (Compound) typeNode() {}

func (c Compound) String() string {
	return c.Left.String() + " -> " + c.Right.String()
}

// foldTypeList folds a flat sequence [t1, t2, ..., tn] parsed from
// `t1 -> t2 -> ... -> tn` into the right-associative tree
// t1 -> (t2 -> (... -> tn)), per spec §3's Type data model. A single-element
// list returns that element's Primitive directly, not a Compound.
func foldTypeList(prims []Primitive) Type {
	if len(prims) == 1 {
		return prims[0]
	}
	var tail Type = prims[len(prims)-1]
	for i := len(prims) - 2; i >= 0; i-- {
		tail = Compound{Left: prims[i], Right: tail}
	}
	return tail
}

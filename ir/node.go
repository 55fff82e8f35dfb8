package ir

import (
	"maps"
	"slices"
)

// Node is one value in a document tree. The Type field selects which of
// the remaining fields carry the value: Fields/Values for objects, Values
// for arrays, and the scalar fields otherwise.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node with fields in sorted key order, making
// key iteration deterministic regardless of decode order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = &Node{
			Type:   StringType,
			String: key,
		}
		res.Values[i] = m[key]
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Get returns the value of an object field, or nil if absent.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the field names of an object node in field order.
func Keys(y *Node) []string {
	res := make([]string, len(y.Fields))
	for i := range y.Fields {
		res[i] = y.Fields[i].String
	}
	return res
}

package ir

import (
	"encoding/json"
	"fmt"
)

// FromGo converts a decoded Go value (the shapes produced by encoding/json
// and goccy/go-yaml when decoding into any) to a Node tree.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t <= 1<<63-1 {
			return FromInt(int64(t)), nil
		}
		return &Node{Type: NumberType, Number: fmt.Sprintf("%d", t)}, nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumber(t)
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for key, val := range t {
			node, err := FromGo(val)
			if err != nil {
				return nil, err
			}
			m[key] = node
		}
		return FromMap(m), nil
	case []any:
		vs := make([]*Node, len(t))
		for i, val := range t {
			node, err := FromGo(val)
			if err != nil {
				return nil, err
			}
			vs[i] = node
		}
		return FromSlice(vs), nil
	default:
		return nil, fmt.Errorf("cannot represent %T in document tree", v)
	}
}

func fromNumber(n json.Number) (*Node, error) {
	if i, err := n.Int64(); err == nil {
		return FromInt(i), nil
	}
	if f, err := n.Float64(); err == nil {
		return FromFloat(f), nil
	}
	return &Node{Type: NumberType, Number: n.String()}, nil
}

// ToGo converts a Node tree back to plain Go values. Objects become
// map[string]any, arrays []any, numbers int64 or float64.
func ToGo(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToGo(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToGo(y.Values[i])
		}
		return res
	}
	return nil
}

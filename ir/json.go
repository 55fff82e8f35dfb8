package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON renders the node as the plain JSON value it represents.
// Object fields appear in field order.
func (y *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := appendJSON(&buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			buf.WriteString(strconv.FormatFloat(*y.Float64, 'g', -1, 64))
		default:
			buf.WriteString(y.Number)
		}
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := appendJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node type %s", y.Type)
	}
	return nil
}

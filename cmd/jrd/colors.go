package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jacksmith15/json-ref-dict/ir"
)

// Colors maps token roles to sprint functions for raw-tree rendering.
type Colors struct {
	Field  func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Ref    func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field:  color.RGB(196, 96, 16).SprintfFunc(),
		String: color.GreenString,
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.YellowString,
		Null:   color.HiBlackString,
		Ref:    color.MagentaString,
	}
}

func plain(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (c *Colors) field(s string) string {
	if c == nil {
		return plain("%s", s)
	}
	return c.Field("%s", s)
}

// fprintNode renders a raw tree as indented JSON, references shown
// literally. colors may be nil for plain output.
func fprintNode(w io.Writer, node *ir.Node, colors *Colors) error {
	if err := fprintIndent(w, node, colors, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func fprintIndent(w io.Writer, node *ir.Node, colors *Colors, depth int) error {
	pad := strings.Repeat("  ", depth)
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			_, err := io.WriteString(w, "{}")
			return err
		}
		if _, err := io.WriteString(w, "{\n"); err != nil {
			return err
		}
		_, isRef := ir.RefTarget(node)
		for i, f := range node.Fields {
			key, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s  %s: ", pad, colors.field(string(key))); err != nil {
				return err
			}
			val := node.Values[i]
			if isRef && f.String == ir.RefKey {
				if err := writeScalar(w, val, colors, true); err != nil {
					return err
				}
			} else if err := fprintIndent(w, val, colors, depth+1); err != nil {
				return err
			}
			if i < len(node.Fields)-1 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s}", pad)
		return err
	case ir.ArrayType:
		if len(node.Values) == 0 {
			_, err := io.WriteString(w, "[]")
			return err
		}
		if _, err := io.WriteString(w, "[\n"); err != nil {
			return err
		}
		for i, v := range node.Values {
			if _, err := fmt.Fprintf(w, "%s  ", pad); err != nil {
				return err
			}
			if err := fprintIndent(w, v, colors, depth+1); err != nil {
				return err
			}
			suffix := "\n"
			if i < len(node.Values)-1 {
				suffix = ",\n"
			}
			if _, err := io.WriteString(w, suffix); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s]", pad)
		return err
	default:
		return writeScalar(w, node, colors, false)
	}
}

func writeScalar(w io.Writer, node *ir.Node, colors *Colors, isRef bool) error {
	sprint := plain
	if colors != nil {
		switch {
		case isRef:
			sprint = colors.Ref
		case node.Type == ir.StringType:
			sprint = colors.String
		case node.Type == ir.NumberType:
			sprint = colors.Number
		case node.Type == ir.BoolType:
			sprint = colors.Bool
		case node.Type == ir.NullType:
			sprint = colors.Null
		}
	}
	switch node.Type {
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sprint("%s", string(d)))
		return err
	case ir.BoolType:
		_, err := io.WriteString(w, sprint("%s", strconv.FormatBool(node.Bool)))
		return err
	case ir.NullType:
		_, err := io.WriteString(w, sprint("null"))
		return err
	case ir.NumberType:
		d, err := node.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sprint("%s", string(d)))
		return err
	default:
		return fmt.Errorf("not a scalar: %s", node.Type)
	}
}

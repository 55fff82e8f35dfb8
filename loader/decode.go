package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacksmith15/json-ref-dict/ir"
)

// Decode deserializes document content into an ir tree. The hint (a
// media type or file extension) selects the deserializer; without a
// usable hint, JSON is attempted first and YAML second.
func Decode(data []byte, hint string) (*ir.Node, error) {
	switch {
	case hintMatches(hint, "json"):
		return decodeJSON(data)
	case hintMatches(hint, "yaml"), hintMatches(hint, "yml"):
		return decodeYAML(data)
	}
	node, jsonErr := decodeJSON(data)
	if jsonErr == nil {
		return node, nil
	}
	node, yamlErr := decodeYAML(data)
	if yamlErr == nil {
		return node, nil
	}
	return nil, fmt.Errorf("%w: not valid JSON (%v) nor YAML (%v)", ErrUnsupportedFormat, jsonErr, yamlErr)
}

func hintMatches(hint, format string) bool {
	return strings.Contains(strings.ToLower(hint), format)
}

func decodeJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	return ir.FromGo(v)
}

func decodeYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	return ir.FromGo(v)
}
